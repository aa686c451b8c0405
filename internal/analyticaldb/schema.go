// Package analyticaldb exports decoded telemetry into a SQLite database
// suitable for Grafana dashboards and ad hoc offline analysis, using
// modernc.org/sqlite (a pure-Go driver, so the export path never needs
// cgo).
package analyticaldb

const schema = `
CREATE TABLE IF NOT EXISTS recordings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source_file TEXT NOT NULL,
	created_at TEXT NOT NULL,
	duration_secs REAL NOT NULL,
	sample_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS physics (
	recording_id INTEGER NOT NULL,
	time_offset REAL NOT NULL,
	packet_id INTEGER,
	gas REAL, brake REAL, clutch REAL, steer_angle REAL, gear INTEGER, rpm INTEGER,
	autoshifter_on INTEGER, ignition_on INTEGER, starter_engine_on INTEGER, is_engine_running INTEGER,
	speed_kmh REAL,
	velocity_x REAL, velocity_y REAL, velocity_z REAL,
	local_velocity_x REAL, local_velocity_y REAL, local_velocity_z REAL,
	local_angular_vel_x REAL, local_angular_vel_y REAL, local_angular_vel_z REAL,
	g_force_x REAL, g_force_y REAL, g_force_z REAL,
	heading REAL, pitch REAL, roll REAL, final_ff REAL,
	wheel_slip_fl REAL, wheel_slip_fr REAL, wheel_slip_rl REAL, wheel_slip_rr REAL,
	wheel_load_fl REAL, wheel_load_fr REAL, wheel_load_rl REAL, wheel_load_rr REAL,
	wheel_pressure_fl REAL, wheel_pressure_fr REAL, wheel_pressure_rl REAL, wheel_pressure_rr REAL,
	wheel_angular_speed_fl REAL, wheel_angular_speed_fr REAL, wheel_angular_speed_rl REAL, wheel_angular_speed_rr REAL,
	tyre_wear_fl REAL, tyre_wear_fr REAL, tyre_wear_rl REAL, tyre_wear_rr REAL,
	tyre_dirty_level_fl REAL, tyre_dirty_level_fr REAL, tyre_dirty_level_rl REAL, tyre_dirty_level_rr REAL,
	tyre_core_temp_fl REAL, tyre_core_temp_fr REAL, tyre_core_temp_rl REAL, tyre_core_temp_rr REAL,
	camber_rad_fl REAL, camber_rad_fr REAL, camber_rad_rl REAL, camber_rad_rr REAL,
	suspension_travel_fl REAL, suspension_travel_fr REAL, suspension_travel_rl REAL, suspension_travel_rr REAL,
	brake_temp_fl REAL, brake_temp_fr REAL, brake_temp_rl REAL, brake_temp_rr REAL,
	brake_pressure_fl REAL, brake_pressure_fr REAL, brake_pressure_rl REAL, brake_pressure_rr REAL,
	suspension_damage_fl REAL, suspension_damage_fr REAL, suspension_damage_rl REAL, suspension_damage_rr REAL,
	slip_ratio_fl REAL, slip_ratio_fr REAL, slip_ratio_rl REAL, slip_ratio_rr REAL,
	slip_angle_fl REAL, slip_angle_fr REAL, slip_angle_rl REAL, slip_angle_rr REAL,
	pad_life_fl REAL, pad_life_fr REAL, pad_life_rl REAL, pad_life_rr REAL,
	disc_life_fl REAL, disc_life_fr REAL, disc_life_rl REAL, disc_life_rr REAL,
	front_brake_compound INTEGER, rear_brake_compound INTEGER,
	tyre_temp_i_fl REAL, tyre_temp_i_fr REAL, tyre_temp_i_rl REAL, tyre_temp_i_rr REAL,
	tyre_temp_m_fl REAL, tyre_temp_m_fr REAL, tyre_temp_m_rl REAL, tyre_temp_m_rr REAL,
	tyre_temp_o_fl REAL, tyre_temp_o_fr REAL, tyre_temp_o_rl REAL, tyre_temp_o_rr REAL,
	tyre_contact_point_fl_x REAL, tyre_contact_point_fl_y REAL, tyre_contact_point_fl_z REAL,
	tyre_contact_point_fr_x REAL, tyre_contact_point_fr_y REAL, tyre_contact_point_fr_z REAL,
	tyre_contact_point_rl_x REAL, tyre_contact_point_rl_y REAL, tyre_contact_point_rl_z REAL,
	tyre_contact_point_rr_x REAL, tyre_contact_point_rr_y REAL, tyre_contact_point_rr_z REAL,
	tyre_contact_normal_fl_x REAL, tyre_contact_normal_fl_y REAL, tyre_contact_normal_fl_z REAL,
	tyre_contact_normal_fr_x REAL, tyre_contact_normal_fr_y REAL, tyre_contact_normal_fr_z REAL,
	tyre_contact_normal_rl_x REAL, tyre_contact_normal_rl_y REAL, tyre_contact_normal_rl_z REAL,
	tyre_contact_normal_rr_x REAL, tyre_contact_normal_rr_y REAL, tyre_contact_normal_rr_z REAL,
	tyre_contact_heading_fl_x REAL, tyre_contact_heading_fl_y REAL, tyre_contact_heading_fl_z REAL,
	tyre_contact_heading_fr_x REAL, tyre_contact_heading_fr_y REAL, tyre_contact_heading_fr_z REAL,
	tyre_contact_heading_rl_x REAL, tyre_contact_heading_rl_y REAL, tyre_contact_heading_rl_z REAL,
	tyre_contact_heading_rr_x REAL, tyre_contact_heading_rr_y REAL, tyre_contact_heading_rr_z REAL,
	fuel REAL, tc REAL, abs REAL, pit_limiter_on INTEGER, turbo_boost REAL,
	air_temp REAL, road_temp REAL, water_temp REAL,
	car_damage_front REAL, car_damage_rear REAL, car_damage_left REAL, car_damage_right REAL, car_damage_center REAL,
	is_ai_controlled INTEGER, brake_bias REAL,
	tc_in_action INTEGER, abs_in_action INTEGER,
	drs INTEGER, cg_height REAL, number_of_tyres_out INTEGER,
	kers_charge REAL, kers_input REAL, ride_height_front REAL, ride_height_rear REAL,
	ballast REAL, air_density REAL, performance_meter REAL,
	engine_brake INTEGER, ers_recovery_level INTEGER, ers_power_level INTEGER,
	ers_heat_charging INTEGER, ers_is_charging INTEGER, kers_current_kj REAL,
	drs_available INTEGER, drs_enabled INTEGER, p2p_activation INTEGER, p2p_status INTEGER,
	current_max_rpm INTEGER,
	mz_fl REAL, mz_fr REAL, mz_rl REAL, mz_rr REAL,
	fz_fl REAL, fz_fr REAL, fz_rl REAL, fz_rr REAL,
	my_fl REAL, my_fr REAL, my_rl REAL, my_rr REAL,
	kerb_vibration REAL, slip_vibration REAL, g_vibration REAL, abs_vibration REAL,
	FOREIGN KEY (recording_id) REFERENCES recordings(id)
);

CREATE INDEX IF NOT EXISTS idx_physics_recording ON physics(recording_id);
CREATE INDEX IF NOT EXISTS idx_physics_time ON physics(recording_id, time_offset);

CREATE TABLE IF NOT EXISTS statics (
	recording_id INTEGER PRIMARY KEY,
	sm_version TEXT,
	ac_version TEXT,
	number_of_sessions INTEGER,
	num_cars INTEGER,
	track TEXT,
	sector_count INTEGER,
	player_name TEXT,
	player_surname TEXT,
	player_nick TEXT,
	car_model TEXT,
	max_rpm INTEGER,
	max_fuel REAL,
	penalty_enabled INTEGER,
	aid_fuel_rate REAL,
	aid_tyre_rate REAL,
	aid_mechanical_damage REAL,
	aid_stability REAL,
	aid_auto_clutch INTEGER,
	pit_window_start INTEGER,
	pit_window_end INTEGER,
	is_online INTEGER,
	dry_tyres_name TEXT,
	wet_tyres_name TEXT,
	FOREIGN KEY (recording_id) REFERENCES recordings(id)
);

CREATE TABLE IF NOT EXISTS graphics (
	recording_id INTEGER NOT NULL,
	time_offset REAL NOT NULL,
	packet_id INTEGER,
	status INTEGER, session_type INTEGER, session_index INTEGER,
	current_time_str TEXT, last_time_str TEXT, best_time_str TEXT, last_sector_time_str TEXT,
	completed_lap INTEGER, position INTEGER,
	current_time INTEGER, last_time INTEGER, best_time INTEGER, last_sector_time INTEGER,
	number_of_laps INTEGER,
	delta_lap_time_str TEXT, estimated_lap_time_str TEXT,
	delta_lap_time INTEGER, estimated_lap_time INTEGER,
	is_delta_positive INTEGER, is_valid_lap INTEGER,
	fuel_estimated_laps REAL, distance_traveled REAL, normalized_car_position REAL,
	session_time_left REAL, current_sector_index INTEGER,
	is_in_pit INTEGER, is_in_pit_lane INTEGER, ideal_line_on INTEGER,
	mandatory_pit_done INTEGER, missing_mandatory_pits INTEGER,
	penalty_time REAL, penalty INTEGER, flag INTEGER,
	player_car_id INTEGER, active_cars INTEGER,
	car_coordinates_x REAL, car_coordinates_y REAL, car_coordinates_z REAL,
	wind_speed REAL, wind_direction REAL,
	rain_intensity INTEGER, rain_intensity_in_10min INTEGER, rain_intensity_in_30min INTEGER,
	track_grip_status INTEGER, track_status TEXT, clock REAL,
	tc_level INTEGER, tc_cut_level INTEGER, engine_map INTEGER, abs_level INTEGER,
	wiper_stage INTEGER, driver_stint_total_time_left INTEGER, driver_stint_time_left INTEGER,
	rain_tyres INTEGER,
	rain_light INTEGER, flashing_light INTEGER, light_stage INTEGER,
	direction_light_left INTEGER, direction_light_right INTEGER,
	tyre_compound TEXT, is_setup_menu_visible INTEGER,
	main_display_index INTEGER, secondary_display_index INTEGER,
	fuel_per_lap REAL, used_fuel REAL, exhaust_temp REAL,
	gap_ahead INTEGER, gap_behind INTEGER,
	global_yellow INTEGER, global_yellow_s1 INTEGER, global_yellow_s2 INTEGER, global_yellow_s3 INTEGER,
	global_white INTEGER, global_green INTEGER, global_chequered INTEGER, global_red INTEGER,
	mfd_tyre_set INTEGER, mfd_fuel_to_add REAL,
	mfd_tyre_pressure_fl REAL, mfd_tyre_pressure_fr REAL, mfd_tyre_pressure_rl REAL, mfd_tyre_pressure_rr REAL,
	current_tyre_set INTEGER, strategy_tyre_set INTEGER,
	FOREIGN KEY (recording_id) REFERENCES recordings(id)
);

CREATE INDEX IF NOT EXISTS idx_graphics_recording ON graphics(recording_id);
CREATE INDEX IF NOT EXISTS idx_graphics_time ON graphics(recording_id, time_offset);

CREATE TABLE IF NOT EXISTS recording_notes (
	recording_id INTEGER PRIMARY KEY,
	notes TEXT,
	laptime TEXT,
	result TEXT,
	driver_impression TEXT,
	tested_parameters TEXT,
	conditions TEXT,
	setup_notes TEXT,
	session_goal TEXT,
	incident TEXT,
	FOREIGN KEY (recording_id) REFERENCES recordings(id)
);

CREATE TABLE IF NOT EXISTS annotations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	recording_id INTEGER NOT NULL,
	time_offset_sec REAL NOT NULL,
	time_end_sec REAL,
	text TEXT NOT NULL,
	tag TEXT,
	FOREIGN KEY (recording_id) REFERENCES recordings(id)
);
CREATE INDEX IF NOT EXISTS idx_annotations_recording ON annotations(recording_id);
`
