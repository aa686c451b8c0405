package analyticaldb

import "acrtelemetry/internal/decode"

const physicsInsertSQL = `
INSERT INTO physics (
	recording_id, time_offset, packet_id, gas, brake, clutch, steer_angle, gear, rpm,
	autoshifter_on, ignition_on, starter_engine_on, is_engine_running,
	speed_kmh, velocity_x, velocity_y, velocity_z,
	local_velocity_x, local_velocity_y, local_velocity_z,
	local_angular_vel_x, local_angular_vel_y, local_angular_vel_z,
	g_force_x, g_force_y, g_force_z, heading, pitch, roll, final_ff,
	wheel_slip_fl, wheel_slip_fr, wheel_slip_rl, wheel_slip_rr,
	wheel_load_fl, wheel_load_fr, wheel_load_rl, wheel_load_rr,
	wheel_pressure_fl, wheel_pressure_fr, wheel_pressure_rl, wheel_pressure_rr,
	wheel_angular_speed_fl, wheel_angular_speed_fr, wheel_angular_speed_rl, wheel_angular_speed_rr,
	tyre_wear_fl, tyre_wear_fr, tyre_wear_rl, tyre_wear_rr,
	tyre_dirty_level_fl, tyre_dirty_level_fr, tyre_dirty_level_rl, tyre_dirty_level_rr,
	tyre_core_temp_fl, tyre_core_temp_fr, tyre_core_temp_rl, tyre_core_temp_rr,
	camber_rad_fl, camber_rad_fr, camber_rad_rl, camber_rad_rr,
	suspension_travel_fl, suspension_travel_fr, suspension_travel_rl, suspension_travel_rr,
	brake_temp_fl, brake_temp_fr, brake_temp_rl, brake_temp_rr,
	brake_pressure_fl, brake_pressure_fr, brake_pressure_rl, brake_pressure_rr,
	suspension_damage_fl, suspension_damage_fr, suspension_damage_rl, suspension_damage_rr,
	slip_ratio_fl, slip_ratio_fr, slip_ratio_rl, slip_ratio_rr,
	slip_angle_fl, slip_angle_fr, slip_angle_rl, slip_angle_rr,
	pad_life_fl, pad_life_fr, pad_life_rl, pad_life_rr,
	disc_life_fl, disc_life_fr, disc_life_rl, disc_life_rr,
	front_brake_compound, rear_brake_compound,
	tyre_temp_i_fl, tyre_temp_i_fr, tyre_temp_i_rl, tyre_temp_i_rr,
	tyre_temp_m_fl, tyre_temp_m_fr, tyre_temp_m_rl, tyre_temp_m_rr,
	tyre_temp_o_fl, tyre_temp_o_fr, tyre_temp_o_rl, tyre_temp_o_rr,
	tyre_contact_point_fl_x, tyre_contact_point_fl_y, tyre_contact_point_fl_z,
	tyre_contact_point_fr_x, tyre_contact_point_fr_y, tyre_contact_point_fr_z,
	tyre_contact_point_rl_x, tyre_contact_point_rl_y, tyre_contact_point_rl_z,
	tyre_contact_point_rr_x, tyre_contact_point_rr_y, tyre_contact_point_rr_z,
	tyre_contact_normal_fl_x, tyre_contact_normal_fl_y, tyre_contact_normal_fl_z,
	tyre_contact_normal_fr_x, tyre_contact_normal_fr_y, tyre_contact_normal_fr_z,
	tyre_contact_normal_rl_x, tyre_contact_normal_rl_y, tyre_contact_normal_rl_z,
	tyre_contact_normal_rr_x, tyre_contact_normal_rr_y, tyre_contact_normal_rr_z,
	tyre_contact_heading_fl_x, tyre_contact_heading_fl_y, tyre_contact_heading_fl_z,
	tyre_contact_heading_fr_x, tyre_contact_heading_fr_y, tyre_contact_heading_fr_z,
	tyre_contact_heading_rl_x, tyre_contact_heading_rl_y, tyre_contact_heading_rl_z,
	tyre_contact_heading_rr_x, tyre_contact_heading_rr_y, tyre_contact_heading_rr_z,
	fuel, tc, abs, pit_limiter_on, turbo_boost, air_temp, road_temp, water_temp,
	car_damage_front, car_damage_rear, car_damage_left, car_damage_right, car_damage_center,
	is_ai_controlled, brake_bias,
	tc_in_action, abs_in_action,
	drs, cg_height, number_of_tyres_out,
	kers_charge, kers_input, ride_height_front, ride_height_rear,
	ballast, air_density, performance_meter,
	engine_brake, ers_recovery_level, ers_power_level,
	ers_heat_charging, ers_is_charging, kers_current_kj,
	drs_available, drs_enabled, p2p_activation, p2p_status,
	current_max_rpm,
	mz_fl, mz_fr, mz_rl, mz_rr,
	fz_fl, fz_fr, fz_rl, fz_rr,
	my_fl, my_fr, my_rl, my_rr,
	kerb_vibration, slip_vibration, g_vibration, abs_vibration
) VALUES (
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?
)`

func physicsRowArgs(recordingID int64, timeOffset float64, r decode.PhysicsFrame) []any {
	return []any{
		recordingID, timeOffset, r.PacketID, r.Gas, r.Brake, r.Clutch, r.SteerAngle, r.Gear, r.RPM,
		boolInt(r.AutoshifterOn), boolInt(r.IgnitionOn), boolInt(r.StarterEngineOn), boolInt(r.IsEngineRunning),
		r.SpeedKmh, r.Velocity.X, r.Velocity.Y, r.Velocity.Z,
		r.LocalVelocity.X, r.LocalVelocity.Y, r.LocalVelocity.Z,
		r.LocalAngularVel.X, r.LocalAngularVel.Y, r.LocalAngularVel.Z,
		r.GForce.X, r.GForce.Y, r.GForce.Z, r.Heading, r.Pitch, r.Roll, r.FinalFF,
		r.WheelSlip.FrontLeft, r.WheelSlip.FrontRight, r.WheelSlip.RearLeft, r.WheelSlip.RearRight,
		r.WheelLoad.FrontLeft, r.WheelLoad.FrontRight, r.WheelLoad.RearLeft, r.WheelLoad.RearRight,
		r.WheelPressure.FrontLeft, r.WheelPressure.FrontRight, r.WheelPressure.RearLeft, r.WheelPressure.RearRight,
		r.WheelAngularSpeed.FrontLeft, r.WheelAngularSpeed.FrontRight, r.WheelAngularSpeed.RearLeft, r.WheelAngularSpeed.RearRight,
		r.TyreWear.FrontLeft, r.TyreWear.FrontRight, r.TyreWear.RearLeft, r.TyreWear.RearRight,
		r.TyreDirtyLevel.FrontLeft, r.TyreDirtyLevel.FrontRight, r.TyreDirtyLevel.RearLeft, r.TyreDirtyLevel.RearRight,
		r.TyreCoreTemp.FrontLeft, r.TyreCoreTemp.FrontRight, r.TyreCoreTemp.RearLeft, r.TyreCoreTemp.RearRight,
		r.CamberRad.FrontLeft, r.CamberRad.FrontRight, r.CamberRad.RearLeft, r.CamberRad.RearRight,
		r.SuspensionTravel.FrontLeft, r.SuspensionTravel.FrontRight, r.SuspensionTravel.RearLeft, r.SuspensionTravel.RearRight,
		r.BrakeTemp.FrontLeft, r.BrakeTemp.FrontRight, r.BrakeTemp.RearLeft, r.BrakeTemp.RearRight,
		r.BrakePressure.FrontLeft, r.BrakePressure.FrontRight, r.BrakePressure.RearLeft, r.BrakePressure.RearRight,
		r.SuspensionDamage.FrontLeft, r.SuspensionDamage.FrontRight, r.SuspensionDamage.RearLeft, r.SuspensionDamage.RearRight,
		r.SlipRatio.FrontLeft, r.SlipRatio.FrontRight, r.SlipRatio.RearLeft, r.SlipRatio.RearRight,
		r.SlipAngle.FrontLeft, r.SlipAngle.FrontRight, r.SlipAngle.RearLeft, r.SlipAngle.RearRight,
		r.PadLife.FrontLeft, r.PadLife.FrontRight, r.PadLife.RearLeft, r.PadLife.RearRight,
		r.DiscLife.FrontLeft, r.DiscLife.FrontRight, r.DiscLife.RearLeft, r.DiscLife.RearRight,
		r.FrontBrakeCompound, r.RearBrakeCompound,
		r.TyreTempI.FrontLeft, r.TyreTempI.FrontRight, r.TyreTempI.RearLeft, r.TyreTempI.RearRight,
		r.TyreTempM.FrontLeft, r.TyreTempM.FrontRight, r.TyreTempM.RearLeft, r.TyreTempM.RearRight,
		r.TyreTempO.FrontLeft, r.TyreTempO.FrontRight, r.TyreTempO.RearLeft, r.TyreTempO.RearRight,
		r.TyreContactPoint.FrontLeft.X, r.TyreContactPoint.FrontLeft.Y, r.TyreContactPoint.FrontLeft.Z,
		r.TyreContactPoint.FrontRight.X, r.TyreContactPoint.FrontRight.Y, r.TyreContactPoint.FrontRight.Z,
		r.TyreContactPoint.RearLeft.X, r.TyreContactPoint.RearLeft.Y, r.TyreContactPoint.RearLeft.Z,
		r.TyreContactPoint.RearRight.X, r.TyreContactPoint.RearRight.Y, r.TyreContactPoint.RearRight.Z,
		r.TyreContactNormal.FrontLeft.X, r.TyreContactNormal.FrontLeft.Y, r.TyreContactNormal.FrontLeft.Z,
		r.TyreContactNormal.FrontRight.X, r.TyreContactNormal.FrontRight.Y, r.TyreContactNormal.FrontRight.Z,
		r.TyreContactNormal.RearLeft.X, r.TyreContactNormal.RearLeft.Y, r.TyreContactNormal.RearLeft.Z,
		r.TyreContactNormal.RearRight.X, r.TyreContactNormal.RearRight.Y, r.TyreContactNormal.RearRight.Z,
		r.TyreContactHeading.FrontLeft.X, r.TyreContactHeading.FrontLeft.Y, r.TyreContactHeading.FrontLeft.Z,
		r.TyreContactHeading.FrontRight.X, r.TyreContactHeading.FrontRight.Y, r.TyreContactHeading.FrontRight.Z,
		r.TyreContactHeading.RearLeft.X, r.TyreContactHeading.RearLeft.Y, r.TyreContactHeading.RearLeft.Z,
		r.TyreContactHeading.RearRight.X, r.TyreContactHeading.RearRight.Y, r.TyreContactHeading.RearRight.Z,
		r.Fuel, r.TC, r.ABS, boolInt(r.PitLimiterOn), r.TurboBoost, r.AirTemp, r.RoadTemp, r.WaterTemp,
		r.CarDamage.Front, r.CarDamage.Rear, r.CarDamage.Left, r.CarDamage.Right, r.CarDamage.Center,
		boolInt(r.IsAIControlled), r.BrakeBias,
		boolInt(r.TcInAction), boolInt(r.AbsInAction),
		r.DRS, r.CgHeight, r.NumberOfTyresOut,
		r.KersCharge, r.KersInput, r.RideHeightFront, r.RideHeightRear,
		r.Ballast, r.AirDensity, r.PerformanceMeter,
		r.EngineBrake, r.ErsRecoveryLevel, r.ErsPowerLevel,
		r.ErsHeatCharging, r.ErsIsCharging, r.KersCurrentKJ,
		r.DrsAvailable, r.DrsEnabled, r.P2PActivation, r.P2PStatus,
		r.CurrentMaxRPM,
		r.Mz.FrontLeft, r.Mz.FrontRight, r.Mz.RearLeft, r.Mz.RearRight,
		r.Fz.FrontLeft, r.Fz.FrontRight, r.Fz.RearLeft, r.Fz.RearRight,
		r.My.FrontLeft, r.My.FrontRight, r.My.RearLeft, r.My.RearRight,
		r.KerbVibration, r.SlipVibration, r.GVibration, r.AbsVibration,
	}
}

const graphicsInsertSQL = `
INSERT INTO graphics (
	recording_id, time_offset, packet_id, status, session_type, session_index,
	current_time_str, last_time_str, best_time_str, last_sector_time_str,
	completed_lap, position,
	current_time, last_time, best_time, last_sector_time, number_of_laps,
	delta_lap_time_str, estimated_lap_time_str,
	delta_lap_time, estimated_lap_time,
	is_delta_positive, is_valid_lap,
	fuel_estimated_laps, distance_traveled, normalized_car_position,
	session_time_left, current_sector_index,
	is_in_pit, is_in_pit_lane, ideal_line_on,
	mandatory_pit_done, missing_mandatory_pits,
	penalty_time, penalty, flag,
	player_car_id, active_cars,
	car_coordinates_x, car_coordinates_y, car_coordinates_z,
	wind_speed, wind_direction,
	rain_intensity, rain_intensity_in_10min, rain_intensity_in_30min,
	track_grip_status, track_status, clock,
	tc_level, tc_cut_level, engine_map, abs_level,
	wiper_stage, driver_stint_total_time_left, driver_stint_time_left,
	rain_tyres,
	rain_light, flashing_light, light_stage,
	direction_light_left, direction_light_right,
	tyre_compound, is_setup_menu_visible,
	main_display_index, secondary_display_index,
	fuel_per_lap, used_fuel, exhaust_temp,
	gap_ahead, gap_behind,
	global_yellow, global_yellow_s1, global_yellow_s2, global_yellow_s3,
	global_white, global_green, global_chequered, global_red,
	mfd_tyre_set, mfd_fuel_to_add,
	mfd_tyre_pressure_fl, mfd_tyre_pressure_fr, mfd_tyre_pressure_rl, mfd_tyre_pressure_rr,
	current_tyre_set, strategy_tyre_set
) VALUES (
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?
)`

func graphicsRowArgs(recordingID int64, timeOffset float64, r decode.GraphicsRecord) []any {
	return []any{
		recordingID, timeOffset, r.PacketID, r.Status, r.SessionType, r.SessionIndex,
		r.CurrentTimeStr, r.LastTimeStr, r.BestTimeStr, r.LastSectorTimeStr,
		r.CompletedLap, r.Position,
		r.CurrentTime, r.LastTime, r.BestTime, r.LastSectorTime, r.NumberOfLaps,
		r.DeltaLapTimeStr, r.EstimatedLapTimeStr,
		r.DeltaLapTime, r.EstimatedLapTime,
		boolInt(r.IsDeltaPositive), boolInt(r.IsValidLap),
		r.FuelEstimatedLaps, r.DistanceTraveled, r.NormalizedCarPosition,
		r.SessionTimeLeft, r.CurrentSectorIndex,
		boolInt(r.IsInPit), boolInt(r.IsInPitLane), boolInt(r.IdealLineOn),
		boolInt(r.MandatoryPitDone), r.MissingMandatoryPits,
		r.PenaltyTime, r.Penalty, r.Flag,
		r.PlayerCarID, r.ActiveCars,
		r.CarCoordinatesX, r.CarCoordinatesY, r.CarCoordinatesZ,
		r.WindSpeed, r.WindDirection,
		r.RainIntensity, r.RainIntensityIn10min, r.RainIntensityIn30min,
		r.TrackGripStatus, r.TrackStatus, r.Clock,
		r.TcLevel, r.TcCutLevel, r.EngineMap, r.AbsLevel,
		r.WiperStage, r.DriverStintTotalTimeLeft, r.DriverStintTimeLeft,
		boolInt(r.RainTyres),
		boolInt(r.RainLight), boolInt(r.FlashingLight), r.LightStage,
		boolInt(r.DirectionLightLeft), boolInt(r.DirectionLightRight),
		r.TyreCompound, boolInt(r.IsSetupMenuVisible),
		r.MainDisplayIndex, r.SecondaryDisplayIndex,
		r.FuelPerLap, r.UsedFuel, r.ExhaustTemp,
		r.GapAhead, r.GapBehind,
		boolInt(r.GlobalYellow), boolInt(r.GlobalYellowS1), boolInt(r.GlobalYellowS2), boolInt(r.GlobalYellowS3),
		boolInt(r.GlobalWhite), boolInt(r.GlobalGreen), boolInt(r.GlobalChequered), boolInt(r.GlobalRed),
		r.MfdTyreSet, r.MfdFuelToAdd,
		r.MfdTyrePressureFL, r.MfdTyrePressureFR, r.MfdTyrePressureRL, r.MfdTyrePressureRR,
		r.CurrentTyreSet, r.StrategyTyreSet,
	}
}
