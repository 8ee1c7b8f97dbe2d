package redis

import (
	"context"
	"testing"
)

func TestConnect_RequiresAddr(t *testing.T) {
	if _, err := Connect(context.Background(), Config{}); err == nil {
		t.Fatalf("expected error for missing address")
	}
}
