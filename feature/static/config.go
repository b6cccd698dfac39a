package static

// Config holds settings for the generic file responder.
type Config struct {
	// Browse enables directory listings when no index file exists.
	Browse bool `mapstructure:"browse" default:"true"`
	// Index is the file served for a directory request.
	Index string `mapstructure:"index" default:"index.html"`
}
