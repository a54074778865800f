package export

// Section names as they appear in EXPORT files.
const (
	SectionCinema       = "Cinema"
	SectionShot         = "Shot"
	SectionSyncPoint    = "SyncPoint"
	SectionAction       = "Action"
	SectionParticipants = "Participants"
	SectionCameraPath   = "CameraPath"
	SectionKeyframes    = "Keyframes"
)

var cinemaFields = []Field{
	{Name: "GUID", Type: TypeIdent, Width: 36},
	{Name: "Name", Type: TypeString, Width: 16},
	{Name: "Duration", Type: TypeFloat},
	{Name: "CameraCollision", Type: TypeInt},
	{Name: "CollisionRadius", Type: TypeFloat},
	{Name: "FadeIn", Type: TypeInt},
	{Name: "FadeInTime", Type: TypeFloat},
	{Name: "FadeOut", Type: TypeInt},
	{Name: "FadeOutTime", Type: TypeFloat},
	{Name: "FadeColor", Type: TypeQuad},
	{Name: "Skippable", Type: TypeInt},
	{Name: "Letterbox", Type: TypeInt},
	{Name: "LetterboxSize", Type: TypeFloat},
	{Name: "HideHUD", Type: TypeInt},
	{Name: "FreezePlayers", Type: TypeInt},
	{Name: "FreezeEnemies", Type: TypeInt},
	{Name: "Invulnerable", Type: TypeInt},
	{Name: "UseBoundingBox", Type: TypeInt},
	{Name: "BoundingBox", Type: TypeVec6},
	{Name: "BoundingOffset", Type: TypeVec3},
	{Name: "StartPosition", Type: TypeVec3},
	{Name: "StartOrientation", Type: TypeVec3},
	{Name: "EndPosition", Type: TypeVec3},
	{Name: "EndOrientation", Type: TypeVec3},
	{Name: "TimeScale", Type: TypeFloat},
	{Name: "MusicCue", Type: TypeString},
	{Name: "AmbientSound", Type: TypeString},
	{Name: "Priority", Type: TypeInt},
}

var shotFields = []Field{
	{Name: "Name", Type: TypeString, Width: 16},
	{Name: "NextShot", Type: TypeInt},
	{Name: "SkipShot", Type: TypeInt},
	{Name: "MaxDuration", Type: TypeFloat},
	{Name: "Elapsed", Type: TypeFloat},
}

var syncPointFields = []Field{
	{Name: "Name", Type: TypeString, Width: 16},
	{Name: "Type", Type: TypeInt},
	{Name: "Action", Type: TypeInt},
	{Name: "Offset", Type: TypeFloat},
	{Name: "Shot", Type: TypeInt},
	{Name: "FromEnd", Type: TypeInt},
	{Name: "StartTime", Type: TypeFloat},
}

var participantFields = []Field{
	{Name: "GUID", Type: TypeIdent},
}

var cameraPathFields = []Field{
	{Name: "GUID", Type: TypeIdent, Width: 36},
	{Name: "Position", Type: TypeVec3},
	{Name: "Orientation", Type: TypeVec3},
	{Name: "Scale", Type: TypeVec3},
	{Name: "BoundingBox", Type: TypeVec6},
	{Name: "Loops", Type: TypeInt},
	{Name: "Min", Type: TypeVec3},
	{Name: "Range", Type: TypeVec3},
	{Name: "PlaySpeed", Type: TypeFloat},
	{Name: "StartOffset", Type: TypeVec3},
	{Name: "EndOffset", Type: TypeVec3},
	{Name: "LookAt", Type: TypeIdent, Width: 36},
	{Name: "LookAtOffset", Type: TypeVec3},
	{Name: "Closed", Type: TypeInt},
	{Name: "Smooth", Type: TypeInt},
	{Name: "Relative", Type: TypeInt},
}

// keyframeFields documents the seven integer columns of a keyframe row.
var keyframeFields = []Field{
	{Name: "X", Type: TypeInt, Width: 6},
	{Name: "Y", Type: TypeInt, Width: 6},
	{Name: "Z", Type: TypeInt, Width: 6},
	{Name: "QX", Type: TypeInt, Width: 6},
	{Name: "QY", Type: TypeInt, Width: 6},
	{Name: "QZ", Type: TypeInt, Width: 6},
	{Name: "QW", Type: TypeInt, Width: 6},
}

// prefix is the field-name namespace of a section, e.g. `Shot2\`.
func prefix(label string) string {
	return label + `\`
}
