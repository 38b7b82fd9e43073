package component

// ObstacleCount is the fixed size of the obstacle field.
const ObstacleCount = 6

// Obstacles never grows or shrinks during a round.
type Obstacles [ObstacleCount]Sprite

// Last returns the obstacle placed furthest right at round start.
func (o *Obstacles) Last() *Sprite {
	return &o[ObstacleCount-1]
}
