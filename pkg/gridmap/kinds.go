// pkg/gridmap/kinds.go
package gridmap

import "fmt"

// Terrain — тип поверхности клетки
type Terrain uint8

const (
	Plain Terrain = iota
	Crater
	Hill
	Mountain
)

var terrainNames = [...]string{"plain", "crater", "hill", "mountain"}

func (t Terrain) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}

func (t Terrain) MarshalText() ([]byte, error) {
	if int(t) >= len(terrainNames) {
		return nil, fmt.Errorf("unknown terrain %d", uint8(t))
	}
	return []byte(terrainNames[t]), nil
}

func (t *Terrain) UnmarshalText(b []byte) error {
	for i, name := range terrainNames {
		if name == string(b) {
			*t = Terrain(i)
			return nil
		}
	}
	return fmt.Errorf("unknown terrain %q", b)
}

// Resource — ресурс, лежащий на клетке. None означает пустую клетку.
type Resource uint8

const (
	None Resource = iota
	Iron
	Silicon
	RareMetal
)

// Resources перечисляет все добываемые ресурсы в порядке отображения.
var Resources = []Resource{Iron, Silicon, RareMetal}

var resourceNames = [...]string{"none", "iron", "silicon", "rareMetal"}

func (r Resource) String() string {
	if int(r) < len(resourceNames) {
		return resourceNames[r]
	}
	return fmt.Sprintf("resource(%d)", uint8(r))
}

func (r Resource) MarshalText() ([]byte, error) {
	if int(r) >= len(resourceNames) {
		return nil, fmt.Errorf("unknown resource %d", uint8(r))
	}
	return []byte(resourceNames[r]), nil
}

func (r *Resource) UnmarshalText(b []byte) error {
	for i, name := range resourceNames {
		if name == string(b) {
			*r = Resource(i)
			return nil
		}
	}
	return fmt.Errorf("unknown resource %q", b)
}

// BuildingKind — тип постройки на клетке. NoBuilding означает свободную клетку.
type BuildingKind uint8

const (
	NoBuilding BuildingKind = iota
	Miner
	Base
)

var buildingNames = [...]string{"none", "miner", "base"}

func (b BuildingKind) String() string {
	if int(b) < len(buildingNames) {
		return buildingNames[b]
	}
	return fmt.Sprintf("building(%d)", uint8(b))
}

func (b BuildingKind) MarshalText() ([]byte, error) {
	if int(b) >= len(buildingNames) {
		return nil, fmt.Errorf("unknown building %d", uint8(b))
	}
	return []byte(buildingNames[b]), nil
}

func (b *BuildingKind) UnmarshalText(text []byte) error {
	for i, name := range buildingNames {
		if name == string(text) {
			*b = BuildingKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown building %q", text)
}
