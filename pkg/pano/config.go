package pano

import(
	"log"
	"gopkg.in/yaml.v2"

	"github.com/abworrall/panorama/pkg/stitch"
)

/* Example config file ...

verbosity: 1
params:
  sigma: 2
  thresh: 50
  nms: 3
  inlierthresh: 2
  iterations: 10000
  cutoff: 30
  seed: 10
  maxcanvas: 20000
cylindrical: true
outputfilename: pano.png
hdrfilename: pano.hdr
previewwidth: 1024
tonemapper: reinhard05

*/

type Config struct {
	Verbosity       int
	Workers         int            // 0 means one per CPU

	Params          stitch.Params

	Cylindrical     bool           // project both images onto a cylinder before stitching
	FocalLength     float64        // in pixels; if zero, we try to work it out from EXIF

	OutputFilename  string
	OutputGamma     bool           // apply sRGB gamma expansion to the PNG output
	Tonemapper      string         // if set, tonemap the PNG output instead of clamping it
	HDRFilename     string         // if set, also write the unclamped result as radiance HDR
	PreviewFilename string
	PreviewWidth    int            // if >0, write a scaled down copy of the output

	DebugDir        string         // where debug images go, at verbosity >1
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

func NewConfig() Config {
	return Config{
		Params:          stitch.DefaultParams(),
		OutputFilename:  "pano.png",
		PreviewFilename: "preview.png",
		DebugDir:        ".",
	}
}
