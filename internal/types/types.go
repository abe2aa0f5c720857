// Package types defines T, the closed tagged enum of HSC value types, and
// the implicit-conversion lattice the analyzer consults on every argument
// and every leaf reference.
//
// T is a flat enum rather than a unification-based type interface: HSC
// has no type variables or generics to solve for. Passthrough is a
// single meta-variant resolved by local unification within one call (see
// internal/analyzer), not a first-class type parameter threaded through a
// substitution map. A tagged enum with an exhaustive switch is the right
// tool for that shape.
package types

// T is the value type of an analyzed or emitted node.
type T int

const (
	// Meta variants. Unparsed and Passthrough never survive analysis;
	// SpecialForm and FunctionName are markers used during desugaring and
	// emission respectively.
	Unparsed T = iota
	Passthrough
	SpecialForm
	FunctionName

	// Domain scalar types.
	Void
	Boolean
	Real
	Short
	Long
	String
	Script
	GameDifficulty
	Team

	// Object family and name types.
	Object
	Unit
	Vehicle
	Weapon
	Device
	Scenery
	ObjectName
	UnitName
	VehicleName
	WeaponName
	DeviceName
	SceneryName
	ObjectList

	// Remaining enumerated/name types recognized by the catalog but left
	// as opaque strings for the engine to resolve.
	Sound
	SoundName
	Effect
	EffectName
	Damage
	DamageName
	LoopingSound
	LoopingSoundName
	AnimationGraph
	AnimationGraphName
	ActorType
	ActorTypeName
	ModelState
	Trigger
	TriggerName
	WaypointPath
	WaypointPathName
	CutsceneFlag
	CutsceneFlagName
	CutsceneCameraPoint
	CutsceneCameraPointName
	CutsceneTitle
	CutsceneTitleName
	CutsceneRecording
	CutsceneRecordingName
	DeviceGroup
	DeviceGroupName
	AI
	AIName
	AIBehavior
	AIOrders
	StartingProfile
	StartingProfileName
	Conversation
	NavPoint
	HUDMessage
	HUDCorner
	ObjectList2
	SoundEffectCollection
	DamageEffect
	DamageEffectName
)

var names = map[T]string{
	Unparsed:     "unparsed",
	Passthrough:  "passthrough",
	SpecialForm:  "special_form",
	FunctionName: "function_name",

	Void:           "void",
	Boolean:        "boolean",
	Real:           "real",
	Short:          "short",
	Long:           "long",
	String:         "string",
	Script:         "script",
	GameDifficulty: "game_difficulty",
	Team:           "team",

	Object:      "object",
	Unit:        "unit",
	Vehicle:     "vehicle",
	Weapon:      "weapon",
	Device:      "device",
	Scenery:     "scenery",
	ObjectName:  "object_name",
	UnitName:    "unit_name",
	VehicleName: "vehicle_name",
	WeaponName:  "weapon_name",
	DeviceName:  "device_name",
	SceneryName: "scenery_name",
	ObjectList:  "object_list",

	Sound:                   "sound",
	SoundName:               "sound_name",
	Effect:                  "effect",
	EffectName:              "effect_name",
	Damage:                  "damage",
	DamageName:              "damage_name",
	LoopingSound:            "looping_sound",
	LoopingSoundName:        "looping_sound_name",
	AnimationGraph:          "animation_graph",
	AnimationGraphName:      "animation_graph_name",
	ActorType:               "actor_type",
	ActorTypeName:           "actor_type_name",
	ModelState:              "model_state",
	Trigger:                 "trigger_volume",
	TriggerName:             "trigger_volume_name",
	WaypointPath:            "waypoint_path",
	WaypointPathName:        "waypoint_path_name",
	CutsceneFlag:            "cutscene_flag",
	CutsceneFlagName:        "cutscene_flag_name",
	CutsceneCameraPoint:     "cutscene_camera_point",
	CutsceneCameraPointName: "cutscene_camera_point_name",
	CutsceneTitle:           "cutscene_title",
	CutsceneTitleName:       "cutscene_title_name",
	CutsceneRecording:       "cutscene_recording",
	CutsceneRecordingName:   "cutscene_recording_name",
	DeviceGroup:             "device_group",
	DeviceGroupName:         "device_group_name",
	AI:                      "ai",
	AIName:                  "ai_name",
	AIBehavior:              "ai_behavior",
	AIOrders:                "ai_orders",
	StartingProfile:         "starting_profile",
	StartingProfileName:     "starting_profile_name",
	Conversation:            "conversation",
	NavPoint:                "nav_point",
	HUDMessage:              "hud_message",
	HUDCorner:               "hud_corner",
	ObjectList2:             "object_list2",
	SoundEffectCollection:   "sound_effect_collection",
	DamageEffect:            "damage_effect",
	DamageEffectName:        "damage_effect_name",
}

var byName map[string]T

func init() {
	byName = make(map[string]T, len(names))
	for t, n := range names {
		byName[n] = t
	}
}

func (t T) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "?"
}

// Parse resolves a catalog/grammar type name to T. Passthrough is not
// resolvable through Parse from user-facing syntax except where the
// catalog explicitly defines a parameter/return as passthrough — callers
// that must reject Passthrough at a given site (global types, for
// instance) do so themselves after a successful Parse.
func Parse(name string) (T, bool) {
	t, ok := byName[name]
	return t, ok
}

// IsMeta reports whether t is one of the three meta variants that must
// never survive analysis as a node's final value type.
func (t T) IsMeta() bool {
	return t == Unparsed || t == Passthrough || t == SpecialForm
}

func (t T) IsNumeric() bool {
	return t == Real || t == Short || t == Long
}

// objectFamily is the set of types convertible to Object/ObjectList.
var objectFamily = map[T]bool{
	ObjectName: true,
	Object:     true,
	Unit:       true,
	Vehicle:    true,
	Weapon:     true,
	Scenery:    true,
	Device:     true,
}

// CanConvert reports whether a value of type from may be used where to is
// expected: the reflexive closure plus a fixed conversion table.
//
// Short -> Long is intentionally absent even though Long -> Short is
// present.
func CanConvert(from, to T) bool {
	if from == to {
		return true
	}
	if from == Passthrough {
		return true
	}
	switch from {
	case Real:
		return to == Short || to == Long
	case Short:
		return to == Real
	case Long:
		return to == Short || to == Real
	case Vehicle:
		if to == Unit {
			return true
		}
	}
	if objectFamily[from] && (to == Object || to == ObjectList) {
		return true
	}
	return false
}
