package attitude

// Planet names the octant an attitude points toward.
type Planet string

// Octant planets, plus Unknown for vectors lying on an axis plane.
const (
	Grace   Planet = "GRACE" // +x +y +z
	Price   Planet = "PRICE" // +x +y -z
	Bray    Planet = "BRAY"  // +x -y +z
	Mig     Planet = "MIG"   // +x -y -z
	Wiem    Planet = "WIEM"  // -x +y +z
	Mrow    Planet = "MROW"  // -x +y -z
	Turk    Planet = "TURK"  // -x -y +z
	Sebas   Planet = "SEBAS" // -x -y -z
	Unknown Planet = "UNKNOWN"
)

// octants is indexed by a 3-bit mask, bit 2 set for negative x, bit 1 for
// negative y, bit 0 for negative z.
var octants = [8]Planet{Grace, Price, Bray, Mig, Wiem, Mrow, Turk, Sebas}

// Classify returns the planet a points toward. Any zero component yields
// Unknown.
func Classify(a Attitude) Planet {
	if a.X == 0 || a.Y == 0 || a.Z == 0 {
		return Unknown
	}
	idx := 0
	if a.X < 0 {
		idx |= 4
	}
	if a.Y < 0 {
		idx |= 2
	}
	if a.Z < 0 {
		idx |= 1
	}
	return octants[idx]
}

// Planet returns Classify(a).
func (a Attitude) Planet() Planet {
	return Classify(a)
}

// String returns the planet name.
func (p Planet) String() string {
	return string(p)
}

// Planets returns the eight octant planets in sign-table order.
func Planets() []Planet {
	out := make([]Planet, len(octants))
	copy(out, octants[:])
	return out
}

// Octant returns the sign of each axis (+1 or -1) for an octant planet.
// ok is false for Unknown and for names outside the table.
func (p Planet) Octant() (x, y, z int, ok bool) {
	for i, o := range octants {
		if o != p {
			continue
		}
		return signBit(i&4 != 0), signBit(i&2 != 0), signBit(i&1 != 0), true
	}
	return 0, 0, 0, false
}

func signBit(negative bool) int {
	if negative {
		return -1
	}
	return 1
}
