// Package docs registers the Swagger description served under /swagger
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/friends": {
            "get": {
                "description": "List all friends in insertion order with their balance status",
                "produces": ["application/json"],
                "tags": ["friends"],
                "summary": "List friends",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "post": {
                "description": "Add a friend with a zero balance; the image defaults to the avatar service",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["friends"],
                "summary": "Add a friend",
                "parameters": [
                    {
                        "description": "Friend to add",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/session.AddFriendRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/friends/{id}/select": {
            "post": {
                "description": "Select a friend to split a bill with; selecting the selected friend clears the selection",
                "produces": ["application/json"],
                "tags": ["friends"],
                "summary": "Toggle friend selection",
                "parameters": [
                    {"type": "string", "description": "Friend ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/session": {
            "get": {
                "description": "Current mode, selected friend and split form",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Get session state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/session/add-form": {
            "post": {
                "description": "Opens or closes the add friend form; the selected friend is kept",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Toggle the add friend form",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/split": {
            "get": {
                "description": "Split form of the selected friend",
                "produces": ["application/json"],
                "tags": ["split"],
                "summary": "Get the split form",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "post": {
                "description": "Optionally updates the form, then applies it to the selected friend's balance",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["split"],
                "summary": "Split the bill",
                "parameters": [
                    {
                        "description": "Fields to change before submitting",
                        "name": "request",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/session.SplitRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "patch": {
                "description": "Sets bill, payer share and payer in that order; a payer share above the bill is ignored",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["split"],
                "summary": "Update the split form",
                "parameters": [
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/session.SplitRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "response.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "response.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/response.APIError"},
                "success": {"type": "boolean"}
            }
        },
        "session.AddFriendRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "image": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "session.SplitRequest": {
            "type": "object",
            "properties": {
                "bill": {"type": "number"},
                "payer": {"type": "string", "enum": ["USER", "FRIEND", "user", "friend"]},
                "payer_share": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Eat-'n-Split API",
	Description:      "Friends list with per-friend balances and bill splitting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
