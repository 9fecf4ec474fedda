package defs

// SpawnWeight — накопительный порог: тип выбирается, если бросок r < Below.
type SpawnWeight struct {
	Type  EnemyType
	Below float64
}

// WavePattern описывает состав врагов до волны MaxWave включительно.
// MaxWave == 0 означает «все последующие волны».
type WavePattern struct {
	MaxWave int
	Weights []SpawnWeight
}

// WavePatterns определяет смесь врагов по волнам.
// Пороги сохраняются в точности, чтобы последовательности спавна воспроизводились.
var WavePatterns = []WavePattern{
	{MaxWave: 1, Weights: []SpawnWeight{{EnemyScout, 1.0}}},
	{MaxWave: 3, Weights: []SpawnWeight{{EnemyScout, 0.8}, {EnemyWarrior, 1.0}}},
	{MaxWave: 0, Weights: []SpawnWeight{{EnemyScout, 0.6}, {EnemyWarrior, 0.9}, {EnemyBoss, 1.0}}},
}

// PatternForWave возвращает шаблон для номера волны.
func PatternForWave(wave int) WavePattern {
	for _, p := range WavePatterns {
		if p.MaxWave == 0 || wave <= p.MaxWave {
			return p
		}
	}
	return WavePatterns[len(WavePatterns)-1]
}

// Pick выбирает тип врага по броску r ∈ [0,1).
func (p WavePattern) Pick(r float64) EnemyType {
	for _, w := range p.Weights {
		if r < w.Below {
			return w.Type
		}
	}
	return p.Weights[len(p.Weights)-1].Type
}
