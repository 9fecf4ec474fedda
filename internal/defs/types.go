// internal/defs/types.go
package defs

import "fmt"

// Cost — стоимость постройки в ресурсах.
type Cost struct {
	Iron      int `yaml:"iron" json:"iron"`
	Silicon   int `yaml:"silicon" json:"silicon"`
	RareMetal int `yaml:"rare_metal" json:"rareMetal"`
}

func (c Cost) String() string {
	return fmt.Sprintf("iron=%d silicon=%d rareMetal=%d", c.Iron, c.Silicon, c.RareMetal)
}

// Valid сообщает, что ни одна из составляющих не отрицательна.
func (c Cost) Valid() bool {
	return c.Iron >= 0 && c.Silicon >= 0 && c.RareMetal >= 0
}
