package storage_test

import (
	"testing"
	"time"

	"garment-geek/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Host(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"localhost:9000", "localhost:9000"},
		{"http://localhost:9000", "localhost:9000"},
		{"https://s3.amazonaws.com", "s3.amazonaws.com"},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.Config{Endpoint: tt.endpoint}.Host())
		})
	}
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 5*time.Second, storage.Config{TimeoutSeconds: 5}.Timeout())
	assert.Equal(t, 30*time.Second, storage.Config{}.Timeout())
	assert.Equal(t, 30*time.Second, storage.Config{TimeoutSeconds: -1}.Timeout())
}
