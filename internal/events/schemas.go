package events

const studentSignedUpSchema = `{
  "type": "object",
  "title": "StudentSignedUp",
  "properties": {
    "event_id": {"type": "string"},
    "activity": {"type": "string"},
    "email": {"type": "string"},
    "roster_size": {"type": "integer"},
    "max_participants": {"type": "integer"},
    "occurred_at": {"type": "string", "format": "date-time"}
  },
  "required": ["event_id", "activity", "email", "roster_size", "max_participants", "occurred_at"],
  "additionalProperties": false
}`

const studentUnregisteredSchema = `{
  "type": "object",
  "title": "StudentUnregistered",
  "properties": {
    "event_id": {"type": "string"},
    "activity": {"type": "string"},
    "email": {"type": "string"},
    "roster_size": {"type": "integer"},
    "max_participants": {"type": "integer"},
    "occurred_at": {"type": "string", "format": "date-time"}
  },
  "required": ["event_id", "activity", "email", "roster_size", "max_participants", "occurred_at"],
  "additionalProperties": false
}`

// SchemaCatalogEntry maps an event type to its schema definition.
type SchemaCatalogEntry struct {
	Schema string
}

var schemaCatalog = map[string]SchemaCatalogEntry{
	TypeStudentSignedUp: {
		Schema: studentSignedUpSchema,
	},
	TypeStudentUnregistered: {
		Schema: studentUnregisteredSchema,
	},
}
