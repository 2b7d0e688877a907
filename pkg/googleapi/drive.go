package googleapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// DefaultDriveBaseURL is the production Drive API endpoint.
const DefaultDriveBaseURL = "https://www.googleapis.com/drive/v3"

// MIME types used in Drive queries.
const (
	MimeTypeFolder      = "application/vnd.google-apps.folder"
	MimeTypeSpreadsheet = "application/vnd.google-apps.spreadsheet"
)

// ErrInvalidShareLink is returned when a share link matches no recognised
// Drive folder URL format. Detected before any network call.
var ErrInvalidShareLink = errors.New("invalid drive folder link format")

// Drive exposes the file and folder operations the workspace bootstrapper
// needs. The persistence core never touches it.
type Drive struct {
	client  *Client
	baseURL string
}

// NewDrive constructs the Drive backend. An empty baseURL selects the
// production endpoint.
func NewDrive(client *Client, baseURL string) *Drive {
	if baseURL == "" {
		baseURL = DefaultDriveBaseURL
	}
	return &Drive{client: client, baseURL: baseURL}
}

// File is the subset of Drive file metadata the application reads.
type File struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name,omitempty"`
	MimeType string   `json:"mimeType,omitempty"`
	Trashed  bool     `json:"trashed,omitempty"`
	Parents  []string `json:"parents,omitempty"`
}

// Query lists non-trashed files matching a raw Drive query expression.
func (d *Drive) Query(ctx context.Context, query string) ([]File, error) {
	var out struct {
		Files []File `json:"files"`
	}

	endpoint := fmt.Sprintf("%s/files?q=%s&fields=%s&pageSize=1000",
		d.baseURL, url.QueryEscape(query), url.QueryEscape("files(id,name,mimeType,parents)"))
	if err := d.client.doJSON(ctx, "GET", endpoint, nil, &out, "drive", "files.list"); err != nil {
		return nil, err
	}
	return out.Files, nil
}

// FindInFolder returns the first non-trashed file with the given name and
// MIME type inside a folder, or ok=false when none exists.
func (d *Drive) FindInFolder(ctx context.Context, folderID, name, mimeType string) (File, bool, error) {
	query := fmt.Sprintf("name='%s' and '%s' in parents and mimeType='%s' and trashed=false", name, folderID, mimeType)
	files, err := d.Query(ctx, query)
	if err != nil {
		return File{}, false, err
	}
	if len(files) == 0 {
		return File{}, false, nil
	}
	return files[0], true, nil
}

// CreateFolder creates a subfolder inside the given parent.
func (d *Drive) CreateFolder(ctx context.Context, parentID, name string) (File, error) {
	in := File{
		Name:     name,
		MimeType: MimeTypeFolder,
		Parents:  []string{parentID},
	}

	var out File
	endpoint := fmt.Sprintf("%s/files", d.baseURL)
	if err := d.client.doJSON(ctx, "POST", endpoint, in, &out, "drive", "files.create"); err != nil {
		return File{}, err
	}
	return out, nil
}

// MoveToFolder adds the folder as a parent of the file. Used to place a
// freshly created spreadsheet into the workspace folder.
func (d *Drive) MoveToFolder(ctx context.Context, fileID, folderID string) error {
	endpoint := fmt.Sprintf("%s/files/%s?addParents=%s", d.baseURL, fileID, url.QueryEscape(folderID))
	return d.client.doJSON(ctx, "PATCH", endpoint, nil, nil, "drive", "files.update")
}

// IsTrashed reports whether the file has been moved to the Drive trash. A
// 404 from Drive counts as trashed: either way the cached id is stale.
func (d *Drive) IsTrashed(ctx context.Context, fileID string) (bool, error) {
	var out File
	endpoint := fmt.Sprintf("%s/files/%s?fields=%s", d.baseURL, fileID, url.QueryEscape("id,trashed"))
	err := d.client.doJSON(ctx, "GET", endpoint, nil, &out, "drive", "files.get")
	if err != nil {
		var status *StatusError
		if errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
			return true, nil
		}
		return false, err
	}
	return out.Trashed, nil
}

var (
	folderLinkPattern  = regexp.MustCompile(`folders/([a-zA-Z0-9_-]+)`)
	uFolderLinkPattern = regexp.MustCompile(`/u/\d+/folders/([a-zA-Z0-9_-]+)`)
	idQueryPattern     = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
)

// ExtractFolderID pulls a folder identifier out of the share-link formats
// users paste: a bare id, .../folders/{id}, .../u/N/folders/{id} and ?id={id}.
func ExtractFolderID(shareLink string) (string, error) {
	shareLink = strings.TrimSpace(shareLink)

	if !strings.Contains(shareLink, "/") && len(shareLink) > 20 {
		return shareLink, nil
	}

	if m := uFolderLinkPattern.FindStringSubmatch(shareLink); m != nil {
		return m[1], nil
	}
	if m := folderLinkPattern.FindStringSubmatch(shareLink); m != nil {
		return m[1], nil
	}
	if m := idQueryPattern.FindStringSubmatch(shareLink); m != nil {
		return m[1], nil
	}

	return "", ErrInvalidShareLink
}
