// Package formats provides readers for the mesh files a road centerline is
// exported from.
package formats

// Note: Wavefront OBJ is implemented in obj.go
