// internal/component/projectile.go
package component

// Projectile представляет летящую пулю. Скорость хранится в компоненте Velocity.
type Projectile struct {
	Damage float64
}
