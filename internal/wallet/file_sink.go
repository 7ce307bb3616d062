package wallet

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"eventx/internal/tickets"
)

// FileSink offers passes as downloadable .pkpass files in a local
// directory. The files hold unsigned pass JSON: a real wallet will not
// accept them, they exist so the user has something to download.
type FileSink struct {
	dir string
}

// NewFileSink creates the sink and its target directory.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &WalletError{Reason: "failed to create pass directory", Err: err}
	}
	return &FileSink{dir: dir}, nil
}

func (s *FileSink) AddPass(_ context.Context, pass tickets.WalletPass) error {
	data, err := json.MarshalIndent(pass, "", "  ")
	if err != nil {
		return &WalletError{Reason: "failed to encode pass", Err: err}
	}

	name := sanitizeFilename(pass.Description) + "-ticket.pkpass"
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return &WalletError{Reason: "failed to write pass file", Err: err}
	}
	return nil
}

// sanitizeFilename keeps pass titles from escaping the pass directory.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		" ", "_",
		":", "-",
	)
	return replacer.Replace(name)
}
