package cubik

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(cubik.R, cubik.U, cubik.RPrime, cubik.UPrime)
var (
	// Right face moves
	R      = NewFaceTurn(FaceR, TurnCW)     // Right clockwise
	RPrime = NewFaceTurn(FaceR, TurnCCW)    // Right counter-clockwise
	R2     = NewFaceTurn(FaceR, TurnDouble) // Right 180

	// Left face moves
	L      = NewFaceTurn(FaceL, TurnCW)     // Left clockwise
	LPrime = NewFaceTurn(FaceL, TurnCCW)    // Left counter-clockwise
	L2     = NewFaceTurn(FaceL, TurnDouble) // Left 180

	// Up face moves
	U      = NewFaceTurn(FaceU, TurnCW)     // Up clockwise
	UPrime = NewFaceTurn(FaceU, TurnCCW)    // Up counter-clockwise
	U2     = NewFaceTurn(FaceU, TurnDouble) // Up 180

	// Down face moves
	D      = NewFaceTurn(FaceD, TurnCW)     // Down clockwise
	DPrime = NewFaceTurn(FaceD, TurnCCW)    // Down counter-clockwise
	D2     = NewFaceTurn(FaceD, TurnDouble) // Down 180

	// Front face moves
	F      = NewFaceTurn(FaceF, TurnCW)     // Front clockwise
	FPrime = NewFaceTurn(FaceF, TurnCCW)    // Front counter-clockwise
	F2     = NewFaceTurn(FaceF, TurnDouble) // Front 180

	// Back face moves
	B      = NewFaceTurn(FaceB, TurnCW)     // Back clockwise
	BPrime = NewFaceTurn(FaceB, TurnCCW)    // Back counter-clockwise
	B2     = NewFaceTurn(FaceB, TurnDouble) // Back 180

	// Whole-cube rotations
	X      = NewCubeRotation(AxisX, TurnCW)  // Cube rotation like R
	XPrime = NewCubeRotation(AxisX, TurnCCW)
	Y      = NewCubeRotation(AxisY, TurnCW)  // Cube rotation like U
	YPrime = NewCubeRotation(AxisY, TurnCCW)
	Z      = NewCubeRotation(AxisZ, TurnCW)  // Cube rotation like F
	ZPrime = NewCubeRotation(AxisZ, TurnCCW)
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
