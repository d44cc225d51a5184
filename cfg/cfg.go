//Package cfg reads the YAML description of a preprocessing run.
package cfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//Cfg is a structure containing the parameters specified in the
//configuration file. It can be instanced through the Read function or
//by hand. If it is instanced by hand, please use the Check method to
//verify that the Cfg meets the requirements.
type Cfg struct {
	// Traj is the XYZ trajectory file that will be read
	Traj string `yaml:"traj"`

	// Out is the file the recentered trajectory is written to
	Out string `yaml:"out"`

	// Plot, if set, is the image file for the per-frame RMSD plot
	Plot string `yaml:"plot"`

	// Title is the plot title. It defaults to the trajectory file name
	Title string `yaml:"title"`
}

//Read parses the YAML file at path into a checked Cfg.
func Read(path string) (*Cfg, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := new(Cfg)
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("cfg: %s: %w", path, err)
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("cfg: %s: %w", path, err)
	}
	return c, nil
}

//Check verifies that the mandatory fields are set and fills the
//defaults of the optional ones.
func (c *Cfg) Check() error {
	if c.Traj == "" {
		return fmt.Errorf("traj must be set")
	}
	if c.Out == "" {
		return fmt.Errorf("out must be set")
	}
	if c.Title == "" {
		c.Title = c.Traj
	}
	return nil
}
