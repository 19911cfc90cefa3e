// Package docs registers the wattpool api description with swag
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{.Description}}",
    "version": "{{.Version}}"
  },
  "paths": {
    "/leaderboard": {
      "get": {
        "tags": ["leaderboard"],
        "summary": "Filtered, sorted, paginated shared entries",
        "parameters": [
          {"name": "page", "in": "query", "schema": {"type": "integer", "minimum": 1}},
          {"name": "appliance", "in": "query", "schema": {"type": "string", "default": "ANY"}},
          {"name": "source", "in": "query", "schema": {"type": "string", "default": "ANY"}},
          {"name": "region", "in": "query", "schema": {"type": "string", "default": "ALL"}},
          {"name": "sort", "in": "query", "schema": {"type": "string", "enum": ["HIGH", "LOW"]}}
        ],
        "responses": {"200": {"$ref": "#/components/responses/Leaderboard"}}
      }
    },
    "/leaderboard/query": {
      "post": {
        "tags": ["leaderboard"],
        "summary": "Leaderboard query with a JSON body",
        "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/LeaderboardRequest"}}}},
        "responses": {"200": {"$ref": "#/components/responses/Leaderboard"}}
      }
    },
    "/stats": {
      "get": {
        "tags": ["stats"],
        "summary": "Energy totals by region, source and appliance type",
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/StatsResult"}}}}}
      }
    },
    "/entries": {
      "post": {
        "tags": ["entries"],
        "summary": "Publish a location to the shared pool",
        "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/EntryInput"}}}},
        "responses": {"201": {"description": "Created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/EntryKeys"}}}}}
      }
    },
    "/entries/publish": {
      "post": {
        "tags": ["entries"],
        "summary": "Replace by private id, falling back to create",
        "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/PublishInput"}}}},
        "responses": {
          "200": {"description": "Replaced", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/PublishResult"}}}},
          "201": {"description": "Created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/PublishResult"}}}}
        }
      }
    },
    "/entries/{id}": {
      "get": {
        "tags": ["entries"],
        "summary": "Sanitized entry by public id",
        "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SanitizedEntry"}}}}, "404": {"description": "Not Found"}}
      },
      "put": {
        "tags": ["entries"],
        "summary": "Replace an entry by private id",
        "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}],
        "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/EntryInput"}}}},
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/EntryKeys"}}}}, "404": {"description": "Not Found"}}
      },
      "delete": {
        "tags": ["entries"],
        "summary": "Delete an entry by private id",
        "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
      }
    },
    "/meta/health": {"get": {"tags": ["meta"], "summary": "Liveness", "responses": {"200": {"description": "OK"}}}},
    "/meta/ready": {"get": {"tags": ["meta"], "summary": "Readiness of configured stores", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
    "/meta/version": {"get": {"tags": ["meta"], "summary": "Build info", "responses": {"200": {"description": "OK"}}}},
    "/meta/reference": {"get": {"tags": ["meta"], "summary": "Appliance catalog, region codes and source names", "responses": {"200": {"description": "OK"}}}}
  },
  "components": {
    "responses": {
      "Leaderboard": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/LeaderboardResult"}}}}
    },
    "schemas": {
      "PublishInput": {
        "type": "object",
        "properties": {
          "private_id": {"type": "string"},
          "entry": {"$ref": "#/components/schemas/EntryInput"}
        }
      },
      "PublishResult": {
        "type": "object",
        "properties": {
          "public_id": {"type": "string"},
          "private_id": {"type": "string"},
          "created": {"type": "boolean"}
        }
      },
      "Appliance": {
        "type": "object",
        "properties": {
          "appliance_type": {"type": "string"},
          "daily_hours": {"type": "number"},
          "quantity": {"type": "number"}
        }
      },
      "EntryInput": {
        "type": "object",
        "required": ["address", "region"],
        "properties": {
          "address": {"type": "string", "maxLength": 200},
          "region": {"type": "string", "maxLength": 16},
          "appliances": {"type": "array", "maxItems": 64, "items": {"$ref": "#/components/schemas/Appliance"}}
        }
      },
      "EntryKeys": {
        "type": "object",
        "properties": {"public_id": {"type": "string"}, "private_id": {"type": "string"}}
      },
      "SanitizedEntry": {
        "type": "object",
        "properties": {
          "public_id": {"type": "string"},
          "address": {"type": "string"},
          "region": {"type": "string"},
          "appliances": {"type": "array", "items": {"$ref": "#/components/schemas/Appliance"}}
        }
      },
      "LeaderboardRequest": {
        "type": "object",
        "properties": {
          "page": {"type": "integer"},
          "appliance": {"type": "string"},
          "source": {"type": "string"},
          "region": {"type": "string"},
          "sort": {"type": "string"}
        }
      },
      "LeaderboardResult": {
        "type": "object",
        "properties": {
          "entries": {"type": "array", "items": {"$ref": "#/components/schemas/SanitizedEntry"}},
          "current_page": {"type": "integer"},
          "total_pages": {"type": "integer"},
          "total_entries": {"type": "integer"}
        }
      },
      "Bucket": {
        "type": "object",
        "properties": {"name": {"type": "string"}, "weight": {"type": "number"}}
      },
      "StatsResult": {
        "type": "object",
        "properties": {
          "total_energy": {"type": "number"},
          "by_region": {"type": "array", "items": {"$ref": "#/components/schemas/Bucket"}},
          "by_source": {"type": "array", "items": {"$ref": "#/components/schemas/Bucket"}},
          "by_appliance": {"type": "array", "items": {"$ref": "#/components/schemas/Bucket"}}
        }
      }
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "wattpool api",
	Description:      "Household energy leaderboard and statistics",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
