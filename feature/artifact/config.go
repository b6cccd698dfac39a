package artifact

const (
	SourceLocal  = "local"
	SourceBucket = "bucket"

	// ContentTypeAPK is the registered MIME type for Android packages.
	ContentTypeAPK = "application/vnd.android.package-archive"
)

// Config describes the artifact and the routes that serve it.
type Config struct {
	// Source selects where the artifact is read from (local, bucket).
	Source string `mapstructure:"source" default:"local"`
	// Path is the artifact location. For the local source it is relative to
	// the working root; for the bucket source it is the object key.
	Path string `mapstructure:"path" default:"app/build/outputs/apk/debug/app-debug.apk"`
	// Routes are the literal request targets that serve the artifact.
	Routes []string `mapstructure:"routes" default:"/download.stefano/app-debug.apk"`
	// Filename is the name offered to the client in Content-Disposition.
	Filename string `mapstructure:"filename" default:"app-debug.apk"`
	// ContentType is sent instead of a type inferred from the extension.
	ContentType string `mapstructure:"content_type" default:"application/vnd.android.package-archive"`
	// Enabled toggles the download routes.
	Enabled bool `mapstructure:"enabled" default:"true"`
}

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceLocal, SourceBucket:
		return true
	default:
		return false
	}
}
