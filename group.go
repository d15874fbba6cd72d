package yuletide

// Group is one independently rotating part of the scene. Each group owns its
// own angle so hiding or pausing one group never perturbs another's phase.
//
// Single-threaded, no sync.
type Group struct {
	Name string
	// Rate is the base angular speed in radians per second at speed 1.
	Rate float64

	angle   float64
	visible bool
}

// NewGroup creates a visible group at angle zero.
func NewGroup(name string, rate float64) *Group {
	return &Group{Name: name, Rate: rate, visible: true}
}

// Advance accumulates delta*Rate*speed into the angle. Hidden groups keep
// rotating so they reappear in phase with the rest of the scene.
func (g *Group) Advance(delta, speed float64) {
	g.angle = finite(g.angle + delta*g.Rate*speed)
}

// Angle returns the accumulated rotation about the vertical axis.
func (g *Group) Angle() float64 { return g.angle }

// Visible reports whether the group is drawn.
func (g *Group) Visible() bool { return g.visible }

// SetVisible shows or hides the group without touching its data.
func (g *Group) SetVisible(v bool) { g.visible = v }

// Group names and base rates used by the scene.
const (
	GroupCanopy    = "canopy"
	GroupLights    = "lights"
	GroupBaubles   = "baubles"
	GroupBells     = "bells"
	GroupStockings = "stockings"
	GroupTinsel    = "tinsel"
	GroupGifts     = "gifts"
	GroupStar      = "star"
	GroupStrands   = "strands"
	GroupSnow      = "snow"
	GroupFloor     = "floor"
)

// GroupRates maps group names to their base angular speed.
type GroupRates map[string]float64

// DefaultGroupRates returns the rotation rate of every group. Wall-mounted
// strands, the snow volume and the floor never rotate.
func DefaultGroupRates() GroupRates {
	return GroupRates{
		GroupCanopy:    0.1,
		GroupLights:    0.15,
		GroupBaubles:   0.15,
		GroupBells:     0.15,
		GroupStockings: 0.15,
		GroupTinsel:    0.15,
		GroupGifts:     0.1,
		GroupStar:      0.5,
		GroupStrands:   0,
		GroupSnow:      0,
		GroupFloor:     0,
	}
}

// groupOrder fixes iteration order over groups.
var groupOrder = [...]string{
	GroupCanopy, GroupLights, GroupBaubles, GroupBells, GroupStockings,
	GroupTinsel, GroupGifts, GroupStar, GroupStrands, GroupSnow, GroupFloor,
}

// categoryGroups lists the groups each visibility category toggles.
var categoryGroups = [numCategories][]string{
	CategoryGifts:        {GroupGifts},
	CategoryStockings:    {GroupStockings},
	CategoryBells:        {GroupBells},
	CategorySnow:         {GroupSnow},
	CategoryStringLights: {GroupStrands},
	CategoryFloorDecor:   {GroupFloor},
}
