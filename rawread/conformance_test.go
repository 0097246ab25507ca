package rawread

import (
	"os"
	"path/filepath"
	"testing"

	yaml "github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"

	"github.com/rendaw/luxem-go/format"
)

type conformanceCase struct {
	Name        string   `yaml:"name"`
	Input       string   `yaml:"input"`
	Events      []string `yaml:"events"`
	ErrorOffset *uint64  `yaml:"error_offset"`
}

type conformanceFile struct {
	Cases []conformanceCase `yaml:"cases"`
}

func TestReader_Conformance(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "conformance.yaml"))
	require.NoError(t, err)

	var file conformanceFile
	require.NoError(t, yaml.Unmarshal(raw, &file))
	require.NotEmpty(t, file.Cases)

	for _, tc := range file.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			rec := &eventRecorder{}
			r := NewReader(rec.callbacks())
			_, feedErr := r.Feed([]byte(tc.Input), true)

			if tc.ErrorOffset != nil {
				fe := format.AsFormatError(feedErr)
				require.NotNil(t, fe, "expected FormatError, got %v", feedErr)
				require.Equal(t, *tc.ErrorOffset, fe.Offset, "error: %v", feedErr)

				return
			}

			require.NoError(t, feedErr)
			if len(tc.Events) == 0 {
				require.Empty(t, rec.events)
			} else {
				require.Equal(t, tc.Events, rec.events)
			}
		})
	}
}
