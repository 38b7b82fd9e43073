package component

// ParallaxLayer is one horizontally tiled background. OffsetX stays within
// (-TiledWidth, 0]; the layer is drawn at OffsetX and OffsetX+TiledWidth.
type ParallaxLayer struct {
	Name       string
	Sheet      string
	OffsetX    float64
	Speed      float64
	TiledWidth float64
}

// Layer indices, far to near.
const (
	LayerFar = iota
	LayerMid
	LayerNear
	LayerCount
)
