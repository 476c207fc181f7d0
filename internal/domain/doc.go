// Package domain holds what the user, address and watch entities share: the
// sentinel errors every layer classifies failures with, and ValidationError
// for per-field rejections. The entities themselves live in sub-packages.
package domain
