package rawlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FormatMetadata is the JSON sidecar written once per raw log so that
// downstream tooling never has to guess the binary layout or schema.
type FormatMetadata struct {
	FormatVersion uint16     `json:"format_version"`
	BinaryFile    string     `json:"binary_file"`
	CreatedAt     string     `json:"created_at"`
	SampleRateHz  uint32     `json:"sample_rate_hz"`
	Source        string     `json:"source"`
	FileFormat    FileFormat `json:"file_format"`
	Schema        Schema     `json:"schema"`
}

type FileFormat struct {
	Header        HeaderFormat `json:"header"`
	Chunks        ChunkFormat  `json:"chunks"`
	Serialization string       `json:"serialization"`
}

type HeaderFormat struct {
	SizeBytes uint32        `json:"size_bytes"`
	Layout    []HeaderField `json:"layout"`
	ByteOrder string        `json:"byte_order"`
}

type HeaderField struct {
	Offset      uint32 `json:"offset"`
	Size        uint32 `json:"size"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type ChunkFormat struct {
	Structure    string       `json:"structure"`
	LengthPrefix LengthPrefix `json:"length_prefix"`
	Payload      string       `json:"payload"`
}

type LengthPrefix struct {
	SizeBytes uint32 `json:"size_bytes"`
	Type      string `json:"type"`
	ByteOrder string `json:"byte_order"`
}

type Schema struct {
	RootType        string    `json:"root_type"`
	RootDescription string    `json:"root_description"`
	Types           []TypeDef `json:"types"`
}

type TypeDef struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Fields      []FieldDef `json:"fields"`
}

type FieldDef struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	Unit *string `json:"unit,omitempty"`
}

func unit(s string) *string { return &s }

var headerLayout = []HeaderField{
	{Offset: 0, Size: 4, Name: "magic", Type: "bytes", Description: "File signature, either \"ACCR\" (physics) or \"ACCG\" (graphics)"},
	{Offset: 4, Size: 2, Name: "version", Type: "u16", Description: "Format version"},
	{Offset: 6, Size: 4, Name: "sample_rate", Type: "u32", Description: "Target sample rate in Hz"},
	{Offset: 10, Size: 6, Name: "reserved", Type: "bytes", Description: "Reserved for future use"},
}

func fileFormat(rootType string) FileFormat {
	return FileFormat{
		Header: HeaderFormat{
			SizeBytes: HeaderSize,
			ByteOrder: "little-endian",
			Layout:    headerLayout,
		},
		Chunks: ChunkFormat{
			Structure: "Repeated: [length_prefix][payload] from offset 16 until EOF",
			LengthPrefix: LengthPrefix{
				SizeBytes: 4,
				Type:      "u32",
				ByteOrder: "little-endian",
			},
			Payload: fmt.Sprintf("gob-encoded %s", rootType),
		},
		Serialization: "encoding/gob (Go standard library). Decode with gob.NewDecoder against the schema below.",
	}
}

var physicsSchemaTypes = []TypeDef{
	{
		Name:        "PhysicsFrame",
		Description: "Complete physics snapshot at one timestep (~333 Hz)",
		Fields: []FieldDef{
			{Name: "packet_id", Type: "i32"},
			{Name: "gas", Type: "f32", Unit: unit("0-1")},
			{Name: "brake", Type: "f32", Unit: unit("0-1")},
			{Name: "clutch", Type: "f32", Unit: unit("0-1")},
			{Name: "steer_angle", Type: "f32", Unit: unit("deg")},
			{Name: "gear", Type: "i32"},
			{Name: "rpm", Type: "i32"},
			{Name: "autoshifter_on", Type: "bool"},
			{Name: "ignition_on", Type: "bool"},
			{Name: "starter_engine_on", Type: "bool"},
			{Name: "is_engine_running", Type: "bool"},
			{Name: "speed_kmh", Type: "f32", Unit: unit("km/h")},
			{Name: "velocity", Type: "Vector3f"},
			{Name: "local_velocity", Type: "Vector3f"},
			{Name: "local_angular_vel", Type: "Vector3f"},
			{Name: "g_force", Type: "Vector3f"},
			{Name: "heading", Type: "f32", Unit: unit("rad")},
			{Name: "pitch", Type: "f32", Unit: unit("rad")},
			{Name: "roll", Type: "f32", Unit: unit("rad")},
			{Name: "final_ff", Type: "f32"},
			{Name: "wheel_slip", Type: "Wheels"},
			{Name: "wheel_pressure", Type: "Wheels", Unit: unit("psi")},
			{Name: "wheel_angular_speed", Type: "Wheels", Unit: unit("rad/s")},
			{Name: "tyre_core_temp", Type: "Wheels", Unit: unit("C")},
			{Name: "suspension_travel", Type: "Wheels", Unit: unit("mm")},
			{Name: "brake_temp", Type: "Wheels", Unit: unit("C")},
			{Name: "brake_pressure", Type: "Wheels", Unit: unit("bar")},
			{Name: "suspension_damage", Type: "Wheels"},
			{Name: "slip_ratio", Type: "Wheels"},
			{Name: "slip_angle", Type: "Wheels", Unit: unit("deg")},
			{Name: "pad_life", Type: "Wheels", Unit: unit("%")},
			{Name: "disc_life", Type: "Wheels", Unit: unit("%")},
			{Name: "front_brake_compound", Type: "i32"},
			{Name: "rear_brake_compound", Type: "i32"},
			{Name: "tyre_contact_point", Type: "ContactPoint"},
			{Name: "tyre_contact_normal", Type: "ContactPoint"},
			{Name: "tyre_contact_heading", Type: "ContactPoint"},
			{Name: "fuel", Type: "f32", Unit: unit("L")},
			{Name: "tc", Type: "f32"},
			{Name: "abs", Type: "f32"},
			{Name: "pit_limiter_on", Type: "bool"},
			{Name: "turbo_boost", Type: "f32", Unit: unit("bar")},
			{Name: "air_temp", Type: "f32", Unit: unit("C")},
			{Name: "road_temp", Type: "f32", Unit: unit("C")},
			{Name: "water_temp", Type: "f32", Unit: unit("C")},
			{Name: "car_damage", Type: "CarDamage"},
			{Name: "is_ai_controlled", Type: "bool"},
			{Name: "brake_bias", Type: "f32"},
			{Name: "kerb_vibration", Type: "f32"},
			{Name: "slip_vibration", Type: "f32"},
			{Name: "g_vibration", Type: "f32"},
			{Name: "abs_vibration", Type: "f32"},
		},
	},
	vector3fTypeDef,
	wheelsTypeDef,
	contactPointTypeDef,
	{
		Name:        "CarDamage",
		Description: "Car damage (front, rear, left, right, center)",
		Fields: []FieldDef{
			{Name: "front", Type: "f32"},
			{Name: "rear", Type: "f32"},
			{Name: "left", Type: "f32"},
			{Name: "right", Type: "f32"},
			{Name: "center", Type: "f32"},
		},
	},
}

var graphicsSchemaTypes = []TypeDef{
	{
		Name:        "GraphicsRecord",
		Description: "Flattened graphics/session snapshot at one timestep (~60 Hz); per-car arrays are reduced to the locally controlled car's own position",
		Fields: []FieldDef{
			{Name: "packet_id", Type: "i32"},
			{Name: "status", Type: "i32"},
			{Name: "session_type", Type: "i32"},
			{Name: "current_time_str", Type: "string"},
			{Name: "last_time_str", Type: "string"},
			{Name: "best_time_str", Type: "string"},
			{Name: "last_sector_time_str", Type: "string"},
			{Name: "completed_lap", Type: "i32"},
			{Name: "position", Type: "i32"},
			{Name: "current_time", Type: "i32", Unit: unit("ms")},
			{Name: "last_time", Type: "i32", Unit: unit("ms")},
			{Name: "best_time", Type: "i32", Unit: unit("ms")},
			{Name: "session_time_left", Type: "f32", Unit: unit("ms")},
			{Name: "distance_traveled", Type: "f32", Unit: unit("m")},
			{Name: "is_in_pit", Type: "bool"},
			{Name: "current_sector_index", Type: "i32"},
			{Name: "last_sector_time", Type: "i32", Unit: unit("ms")},
			{Name: "number_of_laps", Type: "i32"},
			{Name: "tyre_compound", Type: "string"},
			{Name: "normalized_car_position", Type: "f32", Unit: unit("0-1")},
			{Name: "active_cars", Type: "i32"},
			{Name: "car_coordinates_x", Type: "f32"},
			{Name: "car_coordinates_y", Type: "f32"},
			{Name: "car_coordinates_z", Type: "f32"},
			{Name: "player_car_id", Type: "i32"},
			{Name: "penalty_time", Type: "f32"},
			{Name: "flag", Type: "i32"},
			{Name: "penalty", Type: "i32"},
			{Name: "ideal_line_on", Type: "bool"},
			{Name: "is_in_pit_lane", Type: "bool"},
			{Name: "mandatory_pit_done", Type: "bool"},
			{Name: "wind_speed", Type: "f32", Unit: unit("m/s")},
			{Name: "wind_direction", Type: "f32", Unit: unit("rad")},
			{Name: "is_setup_menu_visible", Type: "bool"},
			{Name: "main_display_index", Type: "i32"},
			{Name: "secondary_display_index", Type: "i32"},
			{Name: "tc_level", Type: "i32"},
			{Name: "tc_cut_level", Type: "i32"},
			{Name: "engine_map", Type: "i32"},
			{Name: "abs_level", Type: "i32"},
			{Name: "fuel_per_lap", Type: "f32", Unit: unit("L")},
			{Name: "rain_light", Type: "bool"},
			{Name: "flashing_light", Type: "bool"},
			{Name: "light_stage", Type: "i32"},
			{Name: "exhaust_temp", Type: "f32", Unit: unit("C")},
			{Name: "wiper_stage", Type: "i32"},
			{Name: "driver_stint_total_time_left", Type: "i32", Unit: unit("ms")},
			{Name: "driver_stint_time_left", Type: "i32", Unit: unit("ms")},
			{Name: "rain_tyres", Type: "bool"},
			{Name: "session_index", Type: "i32"},
			{Name: "used_fuel", Type: "f32", Unit: unit("L")},
			{Name: "delta_lap_time_str", Type: "string"},
			{Name: "delta_lap_time", Type: "i32", Unit: unit("ms")},
			{Name: "estimated_lap_time_str", Type: "string"},
			{Name: "estimated_lap_time", Type: "i32", Unit: unit("ms")},
			{Name: "is_delta_positive", Type: "bool"},
			{Name: "is_valid_lap", Type: "bool"},
			{Name: "fuel_estimated_laps", Type: "f32"},
			{Name: "track_status", Type: "string"},
			{Name: "missing_mandatory_pits", Type: "i32"},
			{Name: "clock", Type: "f32", Unit: unit("s")},
			{Name: "direction_light_left", Type: "bool"},
			{Name: "direction_light_right", Type: "bool"},
			{Name: "global_yellow", Type: "bool"},
			{Name: "global_yellow_s1", Type: "bool"},
			{Name: "global_yellow_s2", Type: "bool"},
			{Name: "global_yellow_s3", Type: "bool"},
			{Name: "global_white", Type: "bool"},
			{Name: "global_green", Type: "bool"},
			{Name: "global_chequered", Type: "bool"},
			{Name: "global_red", Type: "bool"},
			{Name: "mfd_tyre_set", Type: "i32"},
			{Name: "mfd_fuel_to_add", Type: "f32", Unit: unit("L")},
			{Name: "mfd_tyre_pressure_fl", Type: "f32", Unit: unit("psi")},
			{Name: "mfd_tyre_pressure_fr", Type: "f32", Unit: unit("psi")},
			{Name: "mfd_tyre_pressure_rl", Type: "f32", Unit: unit("psi")},
			{Name: "mfd_tyre_pressure_rr", Type: "f32", Unit: unit("psi")},
			{Name: "track_grip_status", Type: "i32"},
			{Name: "rain_intensity", Type: "i32"},
			{Name: "rain_intensity_in_10min", Type: "i32"},
			{Name: "rain_intensity_in_30min", Type: "i32"},
			{Name: "current_tyre_set", Type: "i32"},
			{Name: "strategy_tyre_set", Type: "i32"},
			{Name: "gap_ahead", Type: "i32", Unit: unit("ms")},
			{Name: "gap_behind", Type: "i32", Unit: unit("ms")},
		},
	},
}

var vector3fTypeDef = TypeDef{
	Name:        "Vector3f",
	Description: "3D vector (x, y, z)",
	Fields: []FieldDef{
		{Name: "x", Type: "f32"},
		{Name: "y", Type: "f32"},
		{Name: "z", Type: "f32"},
	},
}

var wheelsTypeDef = TypeDef{
	Name:        "Wheels",
	Description: "Per-wheel values (front_left, front_right, rear_left, rear_right)",
	Fields: []FieldDef{
		{Name: "front_left", Type: "f32"},
		{Name: "front_right", Type: "f32"},
		{Name: "rear_left", Type: "f32"},
		{Name: "rear_right", Type: "f32"},
	},
}

var contactPointTypeDef = TypeDef{
	Name:        "ContactPoint",
	Description: "3D contact points for all four tyres",
	Fields: []FieldDef{
		{Name: "front_left", Type: "Vector3f"},
		{Name: "front_right", Type: "Vector3f"},
		{Name: "rear_left", Type: "Vector3f"},
		{Name: "rear_right", Type: "Vector3f"},
	},
}

// WritePhysicsSidecar writes the schema metadata JSON for a physics raw
// log at rawlogPath, replacing its extension with ".json".
func WritePhysicsSidecar(rawlogPath string, sampleRateHz uint32) error {
	meta := FormatMetadata{
		FormatVersion: FormatVersion,
		BinaryFile:    filepath.Base(rawlogPath),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339Nano),
		SampleRateHz:  sampleRateHz,
		Source:        "ACC shared memory (physics page)",
		FileFormat:    fileFormat("[]PhysicsFrame"),
		Schema: Schema{
			RootType:        "[]PhysicsFrame",
			RootDescription: "Array of physics snapshots, one per sample",
			Types:           physicsSchemaTypes,
		},
	}
	return writeSidecarJSON(rawlogPath, meta)
}

// WriteGraphicsSidecar writes the schema metadata JSON for a graphics raw
// log at rawlogPath, replacing its extension with ".json".
func WriteGraphicsSidecar(rawlogPath string, sampleRateHz uint32) error {
	meta := FormatMetadata{
		FormatVersion: FormatVersion,
		BinaryFile:    filepath.Base(rawlogPath),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339Nano),
		SampleRateHz:  sampleRateHz,
		Source:        "ACC shared memory (graphics page)",
		FileFormat:    fileFormat("[]GraphicsRecord"),
		Schema: Schema{
			RootType:        "[]GraphicsRecord",
			RootDescription: "Array of graphics snapshots, one per sample, restricted to the locally controlled car",
			Types:           graphicsSchemaTypes,
		},
	}
	return writeSidecarJSON(rawlogPath, meta)
}

func writeSidecarJSON(rawlogPath string, meta FormatMetadata) error {
	ext := filepath.Ext(rawlogPath)
	jsonPath := strings.TrimSuffix(rawlogPath, ext) + ".json"

	b, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("rawlog: marshal sidecar metadata: %w", err)
	}
	if err := os.WriteFile(jsonPath, b, 0o644); err != nil {
		return fmt.Errorf("rawlog: write sidecar %s: %w", jsonPath, err)
	}
	return nil
}
