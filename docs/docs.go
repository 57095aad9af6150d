// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

// Package docs registers the Propmatch OpenAPI document with swag so that
// http-swagger can serve it at /swagger/doc.json. Import it for side effects.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Catalog not loaded", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/listings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Browse listings",
                "parameters": [
                    {"type": "string", "description": "Substring of title or city", "name": "search", "in": "query"},
                    {"type": "string", "description": "Exact city or all", "name": "city", "in": "query"},
                    {"type": "string", "description": "Exact property type or all", "name": "type", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number (1-100)", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page (1-100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/listings/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Get a listing",
                "parameters": [{"type": "integer", "description": "Listing ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/listings/{id}/recommendations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Similar listings",
                "parameters": [
                    {"type": "integer", "description": "Target listing ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Number of recommendations (1..max_k)", "name": "k", "in": "query"},
                    {"type": "string", "description": "Substring of title or city", "name": "search", "in": "query"},
                    {"type": "string", "description": "Exact city or all", "name": "city", "in": "query"},
                    {"type": "string", "description": "Exact property type or all", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/listings/{id}/market-stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Market context for a listing",
                "parameters": [
                    {"type": "integer", "description": "Target listing ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Substring of title or city", "name": "search", "in": "query"},
                    {"type": "string", "description": "Exact city or all", "name": "city", "in": "query"},
                    {"type": "string", "description": "Exact property type or all", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/facets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Filter values",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}}
            }
        },
        "/catalog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listings"],
                "summary": "Catalog snapshot info",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}}
            }
        }
    },
    "definitions": {
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "data": {},
                "metadata": {"type": "object", "additionalProperties": true},
                "error": {"$ref": "#/definitions/models.APIError"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Propmatch API",
	Description:      "Similar-listing recommendations and market context over a real-estate catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
