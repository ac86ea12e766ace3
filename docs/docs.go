// Package docs holds the OpenAPI document served under /swagger.
// Keep it in step with the @Summary/@Param annotations in internal/http/handler.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dictionary"],
                "summary": "List words",
                "parameters": [
                    {"type": "integer", "description": "page size (default from config)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "offset", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.WordListResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dictionary"],
                "summary": "View word",
                "parameters": [
                    {"type": "integer", "description": "word id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.WordDetail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/add_text": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json", "application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["dictionary"],
                "summary": "Add text",
                "parameters": [
                    {"type": "string", "description": "free text", "name": "text", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.mutationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/add_url": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["dictionary"],
                "summary": "Add text from URL",
                "parameters": [
                    {"type": "string", "description": "article URL", "name": "url", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.mutationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/add_word": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["dictionary"],
                "summary": "Add word",
                "parameters": [
                    {"type": "string", "description": "word", "name": "word", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.mutationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/{id}/edit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["dictionary"],
                "summary": "Rename word",
                "parameters": [
                    {"type": "integer", "description": "word id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "new name", "name": "word", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.mutationResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/{id}/add_phrase_word": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["dictionary"],
                "summary": "Link phrase word",
                "parameters": [
                    {"type": "integer", "description": "word id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "related word", "name": "phrase_word", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.mutationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/{id}/delete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dictionary"],
                "summary": "Delete word",
                "parameters": [
                    {"type": "integer", "description": "word id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.mutationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/{id}/phrases/{phrase_id}/delete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dictionary"],
                "summary": "Delete phrase",
                "parameters": [
                    {"type": "integer", "description": "word id", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "phrase id", "name": "phrase_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.mutationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/{id}/phrase_words/{phrase_word_id}/delete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dictionary"],
                "summary": "Delete phrase word link",
                "parameters": [
                    {"type": "integer", "description": "word id", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "related word id", "name": "phrase_word_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.mutationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register",
                "parameters": [
                    {"type": "string", "description": "username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"type": "string", "description": "username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Session"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.mutationResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        },
        "handler.mutationResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "redirect": {"type": "string"}
            }
        },
        "model.Word": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "model.Phrase": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "model.PhraseWord": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "model.WordDetail": {
            "type": "object",
            "properties": {
                "word": {"$ref": "#/definitions/model.Word"},
                "phrases": {"type": "array", "items": {"$ref": "#/definitions/model.Phrase"}},
                "phrase_words": {"type": "array", "items": {"$ref": "#/definitions/model.PhraseWord"}}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "username": {"type": "string"}
            }
        },
        "service.Session": {
            "type": "object",
            "properties": {
                "expires_at": {"type": "string"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/model.User"}
            }
        },
        "service.WordListResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.Word"}},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "total": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dictionary API",
	Description:      "Personal dictionary: extracts lemmas, key phrases and their relations from pasted texts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
