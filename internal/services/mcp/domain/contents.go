package domain

import (
	"context"
	"fmt"

	"github.com/okulweb/github-mcp/internal/services/mcp/dispatch"
	"github.com/okulweb/github-mcp/internal/services/mcp/schema"
)

// ContentEntry is the projected view of one directory entry.
type ContentEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Path string `json:"path"`
	Size int    `json:"size"`
}

// GetFileContentsOperation fetches file or directory contents at a path.
//
// This is the one operation whose success shape diverges from the rest, and
// the divergence is contractual:
//   - a directory produces a JSON array projecting name/type/path/size per
//     entry,
//   - a single file produces the base64-decoded file text as-is, with no
//     JSON wrapping,
//   - anything else (symlinks, submodules, undecodable content) falls back
//     to the entire raw provider result, JSON-wrapped.
func GetFileContentsOperation(provider Provider) dispatch.Operation {
	return dispatch.Operation{
		Name:        "get_file_contents",
		Description: "Get the contents of a file or directory in a repository",
		Schema: schema.Schema{Fields: []schema.Field{
			ownerField(),
			repoField(),
			{Name: "path", Kind: schema.KindString, Required: true, Description: "path to the file or directory"},
			{Name: "ref", Kind: schema.KindString, Description: "branch, tag, or commit to read from"},
		}},
		Handler: func(ctx context.Context, params schema.Values) (any, error) {
			file, directory, err := provider.Contents(ctx, params.String("owner"), params.String("repo"), params.String("path"), params.String("ref"))
			if err != nil {
				return nil, fmt.Errorf("contents fetch failed: %w", err)
			}
			if directory != nil {
				entries := make([]ContentEntry, 0, len(directory))
				for _, entry := range directory {
					entries = append(entries, ContentEntry{
						Name: entry.GetName(),
						Type: entry.GetType(),
						Path: entry.GetPath(),
						Size: entry.GetSize(),
					})
				}
				return entries, nil
			}
			if file == nil {
				return nil, fmt.Errorf("contents response is missing")
			}
			if file.GetType() == "file" {
				if text, err := file.GetContent(); err == nil {
					return text, nil
				}
			}
			return file, nil
		},
	}
}
