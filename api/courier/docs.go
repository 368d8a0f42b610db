// Package courier registers the Swagger specification for the courier
// service. Keep this file in sync with the handler annotations under
// internal/courier/http when the API surface changes.
package courier

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Tabwire Team",
            "url": "https://github.com/tabwire/courier"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Login Endpoint",
                "description": "Authenticate with a username and password and receive a bearer token",
                "parameters": [
                    {
                        "description": "username, password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/couriersdk.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "token", "schema": {"$ref": "#/definitions/couriersdk.TokenResponse"}},
                    "400": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "500": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Registration Endpoint",
                "description": "Create a new account and receive a bearer token",
                "parameters": [
                    {
                        "description": "username, password, first_name, last_name, phone",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/couriersdk.RegisterRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "token", "schema": {"$ref": "#/definitions/couriersdk.TokenResponse"}},
                    "400": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "500": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}}
                }
            }
        },
        "/v1/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "User Roster Endpoint",
                "description": "Returns every registered user ordered by username",
                "responses": {
                    "200": {"description": "users", "schema": {"$ref": "#/definitions/couriersdk.UsersResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}}
                }
            }
        },
        "/v1/users/{username}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "User Detail Endpoint",
                "description": "Returns the full record of a single user",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "user record", "schema": {"$ref": "#/definitions/couriersdk.UserResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "404": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}}
                }
            }
        },
        "/v1/users/{username}/messages/from": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Outbox Endpoint",
                "description": "Every message the user has sent, oldest first, annotated with the recipient's profile. Self-access only.",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "messages", "schema": {"$ref": "#/definitions/couriersdk.MessagesResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "403": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "404": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}}
                }
            }
        },
        "/v1/users/{username}/messages/to": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Inbox Endpoint",
                "description": "Every message the user has received, oldest first, annotated with the sender's profile. Self-access only.",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "messages", "schema": {"$ref": "#/definitions/couriersdk.MessagesResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "403": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "404": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}}
                }
            }
        },
        "/v1/messages": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Messages"],
                "summary": "Send Message Endpoint",
                "description": "Delivers a message from the authenticated user to another user",
                "parameters": [
                    {
                        "description": "to_username, body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/couriersdk.SendMessageRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "message", "schema": {"$ref": "#/definitions/couriersdk.MessageResponse"}},
                    "400": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "404": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}}
                }
            }
        },
        "/v1/messages/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Messages"],
                "summary": "Message Detail Endpoint",
                "description": "Returns a single message with both participant profiles. Sender or recipient only.",
                "parameters": [
                    {"type": "integer", "description": "Message ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "message", "schema": {"$ref": "#/definitions/couriersdk.MessageResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "403": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "404": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}}
                }
            }
        },
        "/v1/messages/{id}/read": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Messages"],
                "summary": "Mark Read Endpoint",
                "description": "Stamps a message's read time. Recipient only; idempotent.",
                "parameters": [
                    {"type": "integer", "description": "Message ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "message", "schema": {"$ref": "#/definitions/couriersdk.MessageResponse"}},
                    "401": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "403": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}},
                    "404": {"description": "error, error_description", "schema": {"$ref": "#/definitions/couriersdk.APIError"}}
                }
            }
        },
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "description": "Liveness probe returning basic service health status, uptime and version",
                "responses": {
                    "200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/couriersdk.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "description": "Readiness probe checking the database connection",
                "responses": {
                    "200": {"description": "status, uptime, version, checks", "schema": {"$ref": "#/definitions/couriersdk.HealthResponse"}},
                    "503": {"description": "service not ready", "schema": {"$ref": "#/definitions/couriersdk.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "couriersdk.APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "error_description": {"type": "string"}
            }
        },
        "couriersdk.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "couriersdk.RegisterRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "couriersdk.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "couriersdk.Profile": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "couriersdk.UserSummary": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "couriersdk.UsersResponse": {
            "type": "object",
            "properties": {
                "users": {"type": "array", "items": {"$ref": "#/definitions/couriersdk.UserSummary"}}
            }
        },
        "couriersdk.UserResponse": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "phone": {"type": "string"},
                "join_at": {"type": "string"},
                "last_login_at": {"type": "string"}
            }
        },
        "couriersdk.SendMessageRequest": {
            "type": "object",
            "properties": {
                "to_username": {"type": "string"},
                "body": {"type": "string"}
            }
        },
        "couriersdk.MessageResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "body": {"type": "string"},
                "sent_at": {"type": "string"},
                "read_at": {"type": "string"},
                "from_user": {"$ref": "#/definitions/couriersdk.Profile"},
                "to_user": {"$ref": "#/definitions/couriersdk.Profile"}
            }
        },
        "couriersdk.MessagesResponse": {
            "type": "object",
            "properties": {
                "messages": {"type": "array", "items": {"$ref": "#/definitions/couriersdk.MessageResponse"}}
            }
        },
        "couriersdk.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"},
                "checks": {"$ref": "#/definitions/couriersdk.HealthChecks"}
            }
        },
        "couriersdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT bearer token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Courier Messaging Service API",
	Description:      "A directory-and-messaging backend: user registration and login with salted password hashes, JWT bearer tokens, a user roster, and a per-user message ledger with read receipts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
