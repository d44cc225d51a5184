package trajplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rvallejos/goxyz/xyz"
)

func TestRMSDs(Te *testing.T) {
	traj, err := xyz.New("../xyz/testdata/malonaldehyde.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	out := filepath.Join(Te.TempDir(), "rmsd.png")
	if err := RMSDs(traj, "malonaldehyde IRC", out); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("plot file is empty")
	}
	if err := RMSDs(nil, "", out); err == nil {
		Te.Error("plotting a nil trajectory did not fail")
	}
}
