// Package metadata reads capture dates out of media containers.
//
// Photos are decoded with goexif and read the EXIF DateTime tag (306).
// Videos are probed through a Prober: either the ffprobe binary or a pure Go
// ISO-BMFF reader. Both report streams the way ffprobe does, so the
// creation_time tag of the first video stream drives the result.
//
// A missing or malformed timestamp is not an error: extractors report
// ok=false and the caller routes the file to the default bucket.
package metadata
