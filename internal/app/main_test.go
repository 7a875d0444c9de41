//go:build integration

package app

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/tour-service/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithSharedMongoDB(context.Background(), m))
}
