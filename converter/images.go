package converter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

// ImageFetcher materializes remote images referenced by a document into the
// configured local folder. Results are cached by absolute URL, successes and
// failures alike, so within one fetcher lifetime each URL touches the
// network once; concurrent requests for the same URL share a single fetch.
type ImageFetcher struct {
	config Config
	logger *log.Logger

	group singleflight.Group

	mu         sync.Mutex
	httpClient *http.Client
	cache      map[string]resolution
}

// resolution is the cached outcome for one absolute image URL. An empty ref
// means the fetch did not produce a local file and callers keep their
// original src; warning and message describe why.
type resolution struct {
	ref     string
	warning WarningType
	message string
}

func newImageFetcher(cfg Config, logger *log.Logger) *ImageFetcher {
	return &ImageFetcher{
		config: cfg,
		logger: logger,
		cache:  make(map[string]resolution),
	}
}

// NewImageFetcher creates a standalone fetcher from cfg with defaults
// applied. A Converter manages its own instance; a separate one is useful
// for materializing images outside a document conversion.
func NewImageFetcher(cfg Config) (*ImageFetcher, error) {
	cfg = cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return newImageFetcher(cfg, logger), nil
}

// Resolve maps an image src to the markdown link target: the local path of
// the downloaded copy, or the original src unchanged when downloading is
// disabled or the fetch failed. The returned error is non-nil only when ctx
// was cancelled; fetch failures degrade to the fallback instead.
func (f *ImageFetcher) Resolve(ctx context.Context, src, baseURL string) (string, error) {
	res, err := f.resolve(ctx, src, baseURL)
	if err != nil {
		return "", err
	}
	if res.ref == "" {
		return src, nil
	}
	return res.ref, nil
}

func (f *ImageFetcher) resolve(ctx context.Context, src, baseURL string) (resolution, error) {
	if src == "" || !f.config.DownloadImages {
		return resolution{}, nil
	}

	target := resolveURL(baseURL, src)

	f.mu.Lock()
	if res, ok := f.cache[target]; ok {
		f.mu.Unlock()
		return res, nil
	}
	f.mu.Unlock()

	v, err, _ := f.group.Do(target, func() (any, error) {
		// A flight for this URL can complete and be forgotten between the
		// cache check above and this point; re-check here so each URL
		// still touches the network at most once.
		f.mu.Lock()
		res, ok := f.cache[target]
		f.mu.Unlock()
		if ok {
			return res, nil
		}
		return f.fetch(ctx, target)
	})
	if err != nil {
		if ctx.Err() != nil {
			return resolution{}, ctx.Err()
		}
		// Another conversion's cancellation aborted the shared fetch;
		// treat it as an ordinary failure for this caller.
		return resolution{warning: WarningFetchFailed, message: "image fetch aborted"}, nil
	}
	return v.(resolution), nil
}

// fetch downloads one image. All failure modes except context cancellation
// are converted to a cached fallback resolution rather than an error.
func (f *ImageFetcher) fetch(ctx context.Context, target string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return f.fail(target, WarningFetchFailed, fmt.Sprintf("invalid image URL: %v", err)), nil
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client().Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return f.fail(target, WarningFetchFailed, fmt.Sprintf("fetch failed: %v", err)), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return f.fail(target, WarningFetchFailed, fmt.Sprintf("fetch returned status %d", resp.StatusCode)), nil
	}

	// Read one byte past the limit so an exactly-at-limit image passes.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxImageSize+1))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return f.fail(target, WarningFetchFailed, fmt.Sprintf("reading body: %v", err)), nil
	}
	if int64(len(body)) > f.config.MaxImageSize {
		return f.fail(target, WarningImageTooLarge, fmt.Sprintf("image exceeds %d bytes", f.config.MaxImageSize)), nil
	}

	if err := os.MkdirAll(f.config.ImageFolder, 0755); err != nil {
		return f.fail(target, WarningFetchFailed, fmt.Sprintf("creating image folder: %v", err)), nil
	}
	local := filepath.Join(f.config.ImageFolder, imageFilename(target))
	if err := os.WriteFile(local, body, 0644); err != nil {
		return f.fail(target, WarningFetchFailed, fmt.Sprintf("writing image file: %v", err)), nil
	}

	res := resolution{ref: filepath.ToSlash(local)}
	f.remember(target, res)
	f.logger.Debug("downloaded image", "url", target, "path", local, "bytes", len(body))
	return res, nil
}

func (f *ImageFetcher) fail(target string, warning WarningType, message string) resolution {
	f.logger.Warn("image unavailable", "url", target, "reason", message)
	res := resolution{warning: warning, message: message}
	f.remember(target, res)
	return res
}

func (f *ImageFetcher) remember(target string, res resolution) {
	f.mu.Lock()
	f.cache[target] = res
	f.mu.Unlock()
}

// client returns the shared HTTP client, creating it on first use.
func (f *ImageFetcher) client() *http.Client {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.httpClient == nil {
		f.httpClient = &http.Client{
			Timeout: time.Duration(f.config.TimeoutSeconds) * time.Second,
		}
	}
	return f.httpClient
}

// Close releases idle HTTP connections. Safe to call repeatedly; the client
// is recreated on the next use, so a fetcher survives being closed between
// conversions. The URL cache is kept.
func (f *ImageFetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.httpClient != nil {
		f.httpClient.CloseIdleConnections()
		f.httpClient = nil
	}
	return nil
}

// resolveURL joins src against baseURL. Unparseable inputs fall back to the
// raw src so a bad href degrades instead of erroring.
func resolveURL(baseURL, src string) string {
	if baseURL == "" {
		return src
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return base.ResolveReference(ref).String()
}

// imageFilename derives a stable local filename for an absolute image URL:
// the first 8 hex characters of its SHA-256 plus the URL path's extension,
// defaulting to .jpg. Stable naming makes re-runs overwrite in place.
func imageFilename(target string) string {
	sum := sha256.Sum256([]byte(target))
	name := hex.EncodeToString(sum[:])[:8]

	ext := ".jpg"
	if u, err := url.Parse(target); err == nil {
		if e := path.Ext(u.Path); e != "" {
			ext = e
		}
	}
	return name + ext
}
