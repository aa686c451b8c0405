package decode

// PhysicsSize is the exact byte size of the physics shared-memory segment.
const PhysicsSize = 800

// PhysicsHz is the simulator's nominal physics update rate.
const PhysicsHz = 333

// PhysicsFrame is one decoded sample of the physics segment.
type PhysicsFrame struct {
	PacketID int32

	Gas, Brake, Fuel float32
	Gear, RPM        int32
	SteerAngle       float32
	SpeedKmh         float32
	Velocity         Vector3f
	GForce           Vector3f

	WheelSlip           Wheels
	WheelLoad           Wheels
	WheelPressure       Wheels
	WheelAngularSpeed   Wheels
	TyreWear            Wheels
	TyreDirtyLevel      Wheels
	TyreCoreTemp        Wheels
	CamberRad           Wheels
	SuspensionTravel    Wheels

	DRS               int32
	TC                float32
	Heading           float32
	Pitch             float32
	Roll              float32
	CgHeight          float32
	CarDamage         CarDamage
	NumberOfTyresOut  int32
	PitLimiterOn      bool
	ABS               float32
	KersCharge        float32
	KersInput         float32
	AutoshifterOn     bool
	RideHeightFront   float32
	RideHeightRear    float32
	TurboBoost        float32
	Ballast           float32
	AirDensity        float32
	AirTemp           float32
	RoadTemp          float32
	LocalAngularVel   Vector3f
	FinalFF           float32
	PerformanceMeter  float32
	EngineBrake       int32
	ErsRecoveryLevel  int32
	ErsPowerLevel     int32
	ErsHeatCharging   int32
	ErsIsCharging     int32
	KersCurrentKJ     float32
	DrsAvailable      int32
	DrsEnabled        int32
	BrakeTemp         Wheels
	Clutch            float32
	TyreTempI         Wheels
	TyreTempM         Wheels
	TyreTempO         Wheels
	IsAIControlled    bool
	TyreContactPoint  ContactPoint
	TyreContactNormal ContactPoint
	TyreContactHeading ContactPoint
	BrakeBias         float32
	LocalVelocity     Vector3f
	P2PActivation     int32
	P2PStatus         int32
	CurrentMaxRPM     int32
	Mz                Wheels
	Fz                Wheels
	My                Wheels
	SlipRatio         Wheels
	SlipAngle         Wheels
	TcInAction        bool
	AbsInAction       bool
	SuspensionDamage  Wheels
	WaterTemp         float32
	BrakePressure     Wheels
	FrontBrakeCompound int32
	RearBrakeCompound  int32
	PadLife            Wheels
	DiscLife           Wheels
	IgnitionOn         bool
	StarterEngineOn    bool
	IsEngineRunning    bool
	KerbVibration      float32
	SlipVibration      float32
	GVibration         float32
	AbsVibration       float32
}

// DecodePhysics parses one physics sample from the mapped segment. The
// field read order, including the discarded duplicate tyre-temperature
// read, matches the upstream layout byte for byte.
func DecodePhysics(data []byte) (PhysicsFrame, error) {
	c := newCursor(data)
	var f PhysicsFrame

	f.PacketID = c.i32()
	f.Gas = c.f32()
	f.Brake = c.f32()
	f.Fuel = c.f32()
	f.Gear = c.i32()
	f.RPM = c.i32()
	f.SteerAngle = c.f32()
	f.SpeedKmh = c.f32()
	f.Velocity = c.vector3f()
	f.GForce = c.vector3f()

	f.WheelSlip = c.wheels()
	f.WheelLoad = c.wheels()
	f.WheelPressure = c.wheels()
	f.WheelAngularSpeed = c.wheels()
	f.TyreWear = c.wheels()
	f.TyreDirtyLevel = c.wheels()
	f.TyreCoreTemp = c.wheels()
	f.CamberRad = c.wheels()
	f.SuspensionTravel = c.wheels()

	f.DRS = c.i32()
	f.TC = c.f32()
	f.Heading = c.f32()
	f.Pitch = c.f32()
	f.Roll = c.f32()
	f.CgHeight = c.f32()
	damage := c.f32Array(5)
	f.CarDamage = CarDamage{Front: damage[0], Rear: damage[1], Left: damage[2], Right: damage[3], Center: damage[4]}
	f.NumberOfTyresOut = c.i32()
	f.PitLimiterOn = c.boolFromI32()
	f.ABS = c.f32()
	f.KersCharge = c.f32()
	f.KersInput = c.f32()
	f.AutoshifterOn = c.boolFromI32()
	f.RideHeightFront = c.f32()
	f.RideHeightRear = c.f32()
	f.TurboBoost = c.f32()
	f.Ballast = c.f32()
	f.AirDensity = c.f32()
	f.AirTemp = c.f32()
	f.RoadTemp = c.f32()
	f.LocalAngularVel = c.vector3f()
	f.FinalFF = c.f32()
	f.PerformanceMeter = c.f32()
	f.EngineBrake = c.i32()
	f.ErsRecoveryLevel = c.i32()
	f.ErsPowerLevel = c.i32()
	f.ErsHeatCharging = c.i32()
	f.ErsIsCharging = c.i32()
	f.KersCurrentKJ = c.f32()
	f.DrsAvailable = c.i32()
	f.DrsEnabled = c.i32()
	f.BrakeTemp = c.wheels()
	f.Clutch = c.f32()
	f.TyreTempI = c.wheels()
	f.TyreTempM = c.wheels()
	f.TyreTempO = c.wheels()
	f.IsAIControlled = c.boolFromI32()
	f.TyreContactPoint = c.contactPoint()
	f.TyreContactNormal = c.contactPoint()
	f.TyreContactHeading = c.contactPoint()
	f.BrakeBias = c.f32()
	f.LocalVelocity = c.vector3f()
	f.P2PActivation = c.i32()
	f.P2PStatus = c.i32()
	f.CurrentMaxRPM = c.i32()
	f.Mz = c.wheels()
	f.Fz = c.wheels()
	f.My = c.wheels()
	f.SlipRatio = c.wheels()
	f.SlipAngle = c.wheels()
	f.TcInAction = c.boolFromI32()
	f.AbsInAction = c.boolFromI32()
	f.SuspensionDamage = c.wheels()
	c.wheels() // discarded duplicate tyre-temperature read, kept for offset parity
	f.WaterTemp = c.f32()
	f.BrakePressure = c.wheels()
	f.FrontBrakeCompound = c.i32()
	f.RearBrakeCompound = c.i32()
	f.PadLife = c.wheels()
	f.DiscLife = c.wheels()
	f.IgnitionOn = c.boolFromI32()
	f.StarterEngineOn = c.boolFromI32()
	f.IsEngineRunning = c.boolFromI32()
	f.KerbVibration = c.f32()
	f.SlipVibration = c.f32()
	f.GVibration = c.f32()
	f.AbsVibration = c.f32()

	if c.err != nil {
		return PhysicsFrame{}, c.err
	}
	return f, nil
}
