package source

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const folderMIME = "application/vnd.google-apps.folder"

// DefaultDriveRoot is the folder path under which folder names are resolved.
var DefaultDriveRoot = []string{"# #Test reports", "Cells", "Prismatic"}

// ErrMissingAPIKey is returned when a Drive source is created without a key.
var ErrMissingAPIKey = pkgerrors.New("google drive api key is required")

var folderLink = []*regexp.Regexp{
	regexp.MustCompile(`folders/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`id=([a-zA-Z0-9_-]+)`),
}

// FolderNotFoundError reports a folder missing along the lookup path.
type FolderNotFoundError struct {
	Name string
	// TopLevel is set when the first path element was not found, which
	// usually means the folder is not shared with the key's project.
	TopLevel bool
}

func (e *FolderNotFoundError) Error() string {
	msg := fmt.Sprintf("could not find folder named %q", e.Name)
	if e.TopLevel {
		msg += " (make sure the folder is shared as 'Anyone with the link can view')"
	}
	return msg
}

var _ Source = &Drive{}

// Drive lists and downloads spreadsheets from Google Drive folders.
type Drive struct {
	svc      *drive.Service
	rootPath []string
}

// NewDrive creates a Drive source authenticated with an API key. Extra
// client options are applied after the key.
func NewDrive(ctx context.Context, apiKey string, rootPath []string, opts ...option.ClientOption) (*Drive, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	svc, err := drive.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create drive service")
	}
	return NewDriveFromService(svc, rootPath), nil
}

// NewDriveFromService wraps an existing Drive service.
func NewDriveFromService(svc *drive.Service, rootPath []string) *Drive {
	if rootPath == nil {
		rootPath = DefaultDriveRoot
	}
	return &Drive{svc: svc, rootPath: rootPath}
}

// FolderIDFromLink extracts a folder id from a Drive folder link.
func FolderIDFromLink(locator string) (string, bool) {
	for _, re := range folderLink {
		if m := re.FindStringSubmatch(locator); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// ResolveFolder returns the id of the folder named by locator: either a
// folder link, or a folder name looked up below the root path.
func (d *Drive) ResolveFolder(ctx context.Context, locator string) (string, error) {
	if id, ok := FolderIDFromLink(locator); ok {
		return id, nil
	}

	var parentID string
	for _, name := range append(append([]string(nil), d.rootPath...), locator) {
		q := fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false", escapeQuery(name), folderMIME)
		if parentID != "" {
			q += fmt.Sprintf(" and '%s' in parents", escapeQuery(parentID))
		}

		res, err := d.svc.Files.List().Q(q).Fields("files(id,name)").Context(ctx).Do()
		if err != nil {
			return "", pkgerrors.Wrapf(err, "failed to search for folder %s", name)
		}
		if len(res.Files) == 0 {
			return "", &FolderNotFoundError{Name: name, TopLevel: parentID == ""}
		}
		parentID = res.Files[0].Id
	}

	return parentID, nil
}

// List returns the spreadsheets in the folder named by locator.
func (d *Drive) List(ctx context.Context, locator string) ([]File, error) {
	folderID, err := d.ResolveFolder(ctx, locator)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf("'%s' in parents and trashed=false", escapeQuery(folderID))
	var (
		files     []File
		pageToken string
	)
	for {
		call := d.svc.Files.List().Q(q).Fields("nextPageToken", "files(id,name,mimeType)").Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		res, err := call.Do()
		if err != nil {
			return nil, pkgerrors.Wrap(err, "failed to fetch folder contents")
		}
		for _, f := range res.Files {
			if IsSpreadsheet(f.Name, f.MimeType) {
				files = append(files, File{ID: f.Id, Name: f.Name, MimeType: f.MimeType})
			}
		}
		if res.NextPageToken == "" {
			break
		}
		pageToken = res.NextPageToken
	}

	return files, nil
}

// Fetch downloads the content of a file.
func (d *Drive) Fetch(ctx context.Context, id string) ([]byte, error) {
	resp, err := d.svc.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to download file %s", id)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to read file %s", id)
	}
	return data, nil
}

// escapeQuery escapes a value for a single-quoted Drive query string.
func escapeQuery(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
