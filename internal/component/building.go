// component/building.go
package component

import "go-mars-survival/pkg/gridmap"

// Building — постройка на клетке карты. Снос не предусмотрен.
type Building struct {
	X    int                  `json:"x"`
	Y    int                  `json:"y"`
	Kind gridmap.BuildingKind `json:"type"`
}
