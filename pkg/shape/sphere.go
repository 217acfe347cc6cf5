package shape

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultLatitudeBands     = 16
	DefaultLongitudeSegments = 32

	MinLatitudeBands     = 2
	MinLongitudeSegments = 3
)

// Sphere is a unit-radius UV-sphere. Latitude runs from the south pole
// (-pi/2) to the north pole (+pi/2); longitude runs once around from +X
// toward +Z. The seam at longitude 0 carries duplicated vertices with U = 0
// and U = 1.
type Sphere struct {
	LatitudeBands     int
	LongitudeSegments int
}

// DefaultSphere returns a sphere with the default subdivision
func DefaultSphere() Sphere {
	return Sphere{
		LatitudeBands:     DefaultLatitudeBands,
		LongitudeSegments: DefaultLongitudeSegments,
	}
}

// SphereCounts returns vertex and index counts for the given subdivision
func SphereCounts(lat, lon int) (numVertex, numIndex int) {
	numVertex = (lat + 1) * (lon + 1)
	numIndex = 2 * lon * (lat - 1) * 3
	return
}

func (s Sphere) validate() error {
	if s.LatitudeBands < MinLatitudeBands {
		return &ConfigurationError{Field: "latitude bands", Value: s.LatitudeBands, Reason: "need at least 2"}
	}
	if s.LongitudeSegments < MinLongitudeSegments {
		return &ConfigurationError{Field: "longitude segments", Value: s.LongitudeSegments, Reason: "need at least 3"}
	}
	// every vertex must be addressable by a uint32 index
	if uint64(s.LatitudeBands) >= math.MaxUint32 || uint64(s.LongitudeSegments) >= math.MaxUint32 ||
		uint64(s.LatitudeBands+1)*uint64(s.LongitudeSegments+1) > math.MaxUint32 {
		return &ConfigurationError{
			Field:  "subdivision",
			Value:  [2]int{s.LatitudeBands, s.LongitudeSegments},
			Reason: "vertex count exceeds the uint32 index range",
		}
	}
	return nil
}

func (s Sphere) generate() (Mesh, error) {
	if err := s.validate(); err != nil {
		return Mesh{}, err
	}
	lat, lon := s.LatitudeBands, s.LongitudeSegments
	nVtx, nIdx := SphereCounts(lat, lon)
	m := Mesh{
		Vertices:  make([]Vertex, 0, nVtx),
		Indices:   make([]uint32, 0, nIdx),
		Primitive: Triangles,
	}

	for i := 0; i <= lat; i++ {
		phi := -math32.Pi/2 + float32(i)*math32.Pi/float32(lat)
		sinPhi, cosPhi := math32.Sincos(phi)
		for j := 0; j <= lon; j++ {
			// the seam column reuses column 0's angle so its position is an exact copy
			theta := float32(j%lon) * 2 * math32.Pi / float32(lon)
			sinTheta, cosTheta := math32.Sincos(theta)

			var p mgl32.Vec3
			switch i {
			case 0:
				p = mgl32.Vec3{0, -1, 0}
			case lat:
				p = mgl32.Vec3{0, 1, 0}
			default:
				p = mgl32.Vec3{cosPhi * cosTheta, sinPhi, cosPhi * sinTheta}
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: p,
				Normal:   p,
				TexCoord: mgl32.Vec2{float32(j) / float32(lon), float32(i) / float32(lat)},
			})
		}
	}

	row := uint32(lon + 1)
	for i := 0; i < lat; i++ {
		for j := 0; j < lon; j++ {
			a := uint32(i)*row + uint32(j)
			b := a + 1
			c := a + row
			d := c + 1
			switch i {
			case 0:
				// a and b are the south pole
				m.Indices = append(m.Indices, a, c, d)
			case lat - 1:
				// c and d are the north pole
				m.Indices = append(m.Indices, a, c, b)
			default:
				m.Indices = append(m.Indices, a, c, b, b, c, d)
			}
		}
	}
	return m, nil
}
