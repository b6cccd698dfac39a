// Package config provides configuration management for the server.
//
// It uses Viper for environment variables and godotenv for an optional .env
// file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: listen host and port, working root, timeouts
//   - Artifact: source (local or bucket), path, route aliases, download headers
//   - Static: directory listing and index file
//   - Storage: S3/MinIO credentials and bucket, used by the bucket source
//   - Log: logging level and format
//
// Environment variables map to keys by replacing "." with "_", so
// SERVER_PORT sets server.port and ARTIFACT_ROUTES="/a.apk,/b.apk" sets the
// route alias list.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
