package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{"without paramsKey", "session", "state", "01HX", nil, "compass:session:state:01HX"},
		{"with empty paramsKey", "session", "state", "01HX", []string{}, "compass:session:state:01HX"},
		{"with one paramsKey", "catalogue", "cell", "EL-GL", []string{"v1"}, "compass:catalogue:cell:EL-GL:v1"},
		{"with multiple paramsKey", "result", "stats", "all", []string{"a", "b", "c"}, "compass:result:stats:all:a_b_c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestSessionStateKey(t *testing.T) {
	assert.Equal(t, "compass:session:state:abc", SessionStateKey("abc"))
}
