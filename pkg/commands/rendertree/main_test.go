package rendertree_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/bonsai/pkg/testutil"
)

func TestMain(m *testing.M) {
	testutil.SilenceLogs()
	os.Exit(m.Run())
}
