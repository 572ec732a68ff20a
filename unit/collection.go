package unit

// Collection holds extracted text units per kind, in insertion order and
// without structural duplicates
type Collection struct {
	Identifiers []*TextUnit `yaml:"identifiers" json:"identifiers"`
	Literals    []*TextUnit `yaml:"literals" json:"literals"`
	Comments    []*TextUnit `yaml:"comments" json:"comments"`

	index map[uint64][]*TextUnit
}

// NewCollection creates an empty collection
func NewCollection() *Collection {
	return &Collection{index: map[uint64][]*TextUnit{}}
}

// Add appends the unit unless an identical one is already present, it returns true when added
func (c *Collection) Add(u *TextUnit) bool {
	if c.index == nil {
		c.reindex()
	}
	key, err := Hash(u)
	if err != nil {
		return c.addScan(u)
	}
	for _, candidate := range c.index[key] {
		if candidate.Equal(u) {
			return false
		}
	}
	c.index[key] = append(c.index[key], u)
	c.append(u)
	return true
}

// Len returns the total number of units
func (c *Collection) Len() int {
	return len(c.Identifiers) + len(c.Literals) + len(c.Comments)
}

// Units returns identifiers, literals and comments in that order
func (c *Collection) Units() []*TextUnit {
	ret := make([]*TextUnit, 0, c.Len())
	ret = append(ret, c.Identifiers...)
	ret = append(ret, c.Literals...)
	return append(ret, c.Comments...)
}

func (c *Collection) addScan(u *TextUnit) bool {
	for _, candidate := range *c.group(u.Kind) {
		if candidate.Equal(u) {
			return false
		}
	}
	c.append(u)
	return true
}

func (c *Collection) append(u *TextUnit) {
	group := c.group(u.Kind)
	*group = append(*group, u)
}

func (c *Collection) group(kind Kind) *[]*TextUnit {
	switch kind {
	case KindIdentifier:
		return &c.Identifiers
	case KindLiteral:
		return &c.Literals
	default:
		return &c.Comments
	}
}

func (c *Collection) reindex() {
	c.index = map[uint64][]*TextUnit{}
	for _, u := range c.Units() {
		if key, err := Hash(u); err == nil {
			c.index[key] = append(c.index[key], u)
		}
	}
}
