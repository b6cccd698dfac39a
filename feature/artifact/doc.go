// Package artifact serves the Android build artifact as a forced download.
//
// Each configured route alias is matched byte for byte against the request
// target. A match streams the artifact with a fixed Content-Type and an
// attachment Content-Disposition; anything else is left to the generic file
// responder.
//
// # Sources
//
//   - local: a file under the working root (app/build/outputs/apk/debug/app-debug.apk).
//   - bucket: an object in an S3/MinIO bucket, via core/storage.
//
// # Responses
//
//   - 200: artifact body, streamed, never fully buffered.
//   - 404 "APK file not found": the artifact is missing or is a directory.
//   - 500 "Error downloading APK": any other read failure. The error is logged
//     and the server keeps serving.
package artifact
