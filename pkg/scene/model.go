package scene

// Point is a 2D coordinate written as [x, y] in scene files
type Point [2]float64

// Scene is the decoded content of a scene file
type Scene struct {
	Name   string    `yaml:"name"`
	Scale  float64   `yaml:"scale"`
	Bodies []BodyDef `yaml:"bodies"`
}

// BodyDef describes one rigid body and its fixtures
type BodyDef struct {
	Name     string       `yaml:"name"`
	Type     string       `yaml:"type"`
	Position Point        `yaml:"position"`
	Angle    float64      `yaml:"angle"`
	Fixtures []FixtureDef `yaml:"fixtures"`
}

// FixtureDef describes one fixture. Which fields apply depends on Shape.
type FixtureDef struct {
	Shape      string   `yaml:"shape"`
	Vertices   []Point  `yaml:"vertices"`
	Center     Point    `yaml:"center"`
	Angle      float64  `yaml:"angle"`
	Radius     float64  `yaml:"radius"`
	HalfWidth  float64  `yaml:"halfWidth"`
	HalfHeight float64  `yaml:"halfHeight"`
	Density    *float64 `yaml:"density"`
	Friction   float64  `yaml:"friction"`
	Sensor     bool     `yaml:"sensor"`
}

// Shape names accepted in scene files
const (
	ShapeBox     = "box"
	ShapePolygon = "polygon"
	ShapeCircle  = "circle"
	ShapeEdge    = "edge"
	ShapeChain   = "chain"
	ShapeLoop    = "loop"
)

// Body type names accepted in scene files
const (
	BodyStatic    = "static"
	BodyKinematic = "kinematic"
	BodyDynamic   = "dynamic"
)

// BodyType returns the body type, defaulting to dynamic
func (b BodyDef) BodyType() string {
	if b.Type == "" {
		return BodyDynamic
	}
	return b.Type
}

// FixtureDensity returns the fixture density, defaulting to 1
func (f FixtureDef) FixtureDensity() float64 {
	if f.Density == nil {
		return 1.0
	}
	return *f.Density
}
