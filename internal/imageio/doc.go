// Package imageio reads and writes canvas images.
//
// PNG and JPEG come from the standard library; BMP and TIFF from
// golang.org/x/image. The format of a file is picked from its extension,
// and decoding falls back to content sniffing.
package imageio
