// Package static is the default responder: plain static file serving of the
// working root through fiber's filesystem middleware.
//
//   - A file is served with a content type inferred from its extension.
//   - A directory serves its index file, or a listing when Browse is on.
//   - Anything else is a 404.
package static
