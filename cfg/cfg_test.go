package cfg

import "testing"

func TestRead(t *testing.T) {
	c, err := Read("testdata/run.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if c.Traj != "malonaldehyde_IRC.xyz" || c.Out != "malonaldehyde_IRC_shifted.xyz" {
		t.Errorf("wrong paths: %+v", c)
	}
	if c.Plot != "rmsd.png" {
		t.Errorf("wrong plot file: %q", c.Plot)
	}
	if c.Title != c.Traj {
		t.Errorf("title default not applied: %q", c.Title)
	}
}

func TestCheck(t *testing.T) {
	for _, c := range []Cfg{
		{Out: "b.xyz"},
		{Traj: "a.xyz"},
	} {
		if err := c.Check(); err == nil {
			t.Errorf("Check accepted incomplete config %+v", c)
		}
	}
}
