// Package docs registers the Swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/board": {
            "get": {"tags": ["Board"], "summary": "Get the board", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/drag-end": {
            "post": {"tags": ["Board"], "summary": "Apply a drop", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.DragEndRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/columns": {
            "get": {"tags": ["Columns"], "summary": "List columns", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/columns/{id}/tasks": {
            "post": {"tags": ["Tasks"], "summary": "Add a task", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true, "description": "Column ID"}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.TaskResponse"}}, "404": {"description": "Not Found"}}}
        },
        "/tasks/{id}": {
            "get": {"tags": ["Tasks"], "summary": "Get a task", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true, "description": "Task ID"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TaskResponse"}}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["Tasks"], "summary": "Rename a task", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true, "description": "Task ID"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateTaskRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TaskResponse"}}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Tasks"], "summary": "Delete a task", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true, "description": "Task ID"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/tasks/{id}/labels/{label_id}": {
            "post": {"tags": ["Tasks"], "summary": "Attach a label", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true, "description": "Task ID"},
                    {"type": "string", "in": "path", "name": "label_id", "required": true, "description": "Label ID"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TaskResponse"}}, "404": {"description": "Not Found"}}}
        },
        "/labels": {
            "get": {"tags": ["Labels"], "summary": "List labels", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.LabelResponse"}}}}},
            "post": {"tags": ["Labels"], "summary": "Create a label", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateLabelRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.LabelResponse"}}, "400": {"description": "Bad Request"}}}
        },
        "/labels/{id}": {
            "get": {"tags": ["Labels"], "summary": "Get a label", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true, "description": "Label ID"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LabelResponse"}}, "404": {"description": "Not Found"}}}
        },
        "/events": {
            "get": {"tags": ["Events"], "summary": "Notice stream", "produces": ["text/event-stream"],
                "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "handler.LabelResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "color": {"type": "string"}}},
        "handler.CreateLabelRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "color": {"type": "string"}}},
        "handler.UpdateTaskRequest": {"type": "object", "required": ["title"], "properties": {
            "title": {"type": "string"}}},
        "handler.TaskResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "title": {"type": "string"}, "column_id": {"type": "string"},
            "position": {"type": "integer"},
            "labels": {"type": "array", "items": {"$ref": "#/definitions/handler.LabelResponse"}}}},
        "handler.LocationRequest": {"type": "object", "required": ["droppableId", "index"], "properties": {
            "droppableId": {"type": "string"}, "index": {"type": "integer", "minimum": 0}}},
        "handler.DragEndRequest": {"type": "object", "properties": {
            "draggableId": {"type": "string"},
            "type": {"type": "string", "enum": ["DEFAULT", "COLUMN"]},
            "reason": {"type": "string", "enum": ["DROP", "CANCEL"]},
            "source": {"$ref": "#/definitions/handler.LocationRequest"},
            "destination": {"$ref": "#/definitions/handler.LocationRequest"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Boardy API",
	Description:      "In-memory kanban board: columns, tasks, labels and drag-and-drop moves.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
