package cloudinary

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Kind is the asset category of an upload. It selects the target folder
// and the size cap applied by the handler.
type Kind string

const (
	KindImage    Kind = "image"
	KindAudio    Kind = "audio"
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
)

// ParseKind maps the multipart file_type field to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindImage, KindAudio, KindVideo, KindDocument:
		return Kind(s), true
	}
	return "", false
}

// MediaHost is the only domain uploaded asset URLs may live on.
const MediaHost = "res.cloudinary.com"

// Client wraps Cloudinary uploads behind the gateway contract: binary in,
// durable public URL out.
type Client interface {
	Upload(ctx context.Context, file io.Reader, kind Kind, originalName string) (*UploadResult, error)
}

type UploadResult struct {
	SecureURL string
	PublicID  string
}

// Optimized image params for fast frontend loading
const imageEager = "q_auto,f_auto,w_800,c_fill"

var eagerAsyncFalse = false

type clientImpl struct {
	cloudName  string
	rootFolder string
	uploader   *uploader.API
}

// NewClientFromParams builds a Client from Cloudinary cloud name, API
// key, and secret. rootFolder is the top-level folder for all assets.
func NewClientFromParams(cloudName, apiKey, apiSecret, rootFolder string) (Client, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &clientImpl{cloudName: cloudName, rootFolder: rootFolder, uploader: up}, nil
}

// Folder returns the per-category folder under the root.
func (c *clientImpl) folder(kind Kind) string {
	switch kind {
	case KindAudio:
		return c.rootFolder + "/music"
	case KindVideo:
		return c.rootFolder + "/videos"
	case KindDocument:
		return c.rootFolder + "/resources"
	default:
		return c.rootFolder + "/images"
	}
}

// Upload stores the file durably under <unix-millis>_<sanitized name> in
// the category folder and returns its public URL.
func (c *clientImpl) Upload(ctx context.Context, file io.Reader, kind Kind, originalName string) (*UploadResult, error) {
	params := uploader.UploadParams{
		Folder:       c.folder(kind),
		PublicID:     fmt.Sprintf("%d_%s", time.Now().UnixMilli(), SanitizeFileName(originalName)),
		ResourceType: "auto",
	}
	if kind == KindImage {
		params.Eager = imageEager
		params.EagerAsync = &eagerAsyncFalse
	}
	result, err := c.uploader.Upload(ctx, file, params)
	if err != nil {
		return nil, err
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary: %s", result.Error.Message)
	}
	return &UploadResult{SecureURL: result.SecureURL, PublicID: result.PublicID}, nil
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeFileName turns an original filename into a safe public-id
// fragment: extension stripped, lowercased, non-alphanumerics collapsed
// to single underscores, capped at 50 characters.
func SanitizeFileName(name string) string {
	base := name
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	base = strings.ToLower(base)
	base = nonAlnum.ReplaceAllString(base, "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "file"
	}
	if len(base) > 50 {
		base = base[:50]
	}
	return base
}

// IsMediaURL reports whether rawURL is an https URL on the media host.
func IsMediaURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host == MediaHost
}
