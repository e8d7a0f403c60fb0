package storage

import "io"

// BlobStore keeps exported report files under slash-separated keys.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error)
	Get(key string) (io.ReadCloser, error)
	// List returns the stored keys in lexical order.
	List() ([]string, error)
	// SignedURL is a link the user can open; the file store hands out file:// URLs.
	SignedURL(key string) (string, error)
}
