package render

import (
	"math"

	"memoa/vmath"
)

// cameraDistance places the eye behind the ring origin
const cameraDistance = 22.0

// cellAspect compensates for terminal cells being taller than wide
const cellAspect = 0.5

// Project maps a world point to a terminal cell through a yaw
// rotation and a simple pinhole camera:
//
//	screenX = cx + fx · x' / (z' + cameraDistance)
//	screenY = cy − fy · y' / (z' + cameraDistance)
//
// Returns ok=false for points behind the camera. depth is the
// rotated z, usable for painter's ordering and dimming
func Project(p vmath.Vec3, yaw float64, width, height int) (x, y int, depth float64, ok bool) {
	// Yaw rotation around the vertical axis
	sin, cos := math.Sin(yaw), math.Cos(yaw)
	rx := p.X*cos - p.Z*sin
	rz := p.X*sin + p.Z*cos

	dz := rz + cameraDistance
	if dz <= 0.1 {
		return 0, 0, rz, false
	}

	focal := float64(height) * 1.2
	sx := float64(width)/2 + focal*rx/dz
	sy := float64(height)/2 - focal*cellAspect*p.Y/dz

	x = int(math.Round(sx))
	y = int(math.Round(sy))
	if x < 0 || x >= width || y < 0 || y >= height {
		return x, y, rz, false
	}
	return x, y, rz, true
}
