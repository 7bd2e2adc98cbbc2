// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

// Package docs registers the OpenAPI document served at /swagger/doc.json.
//
// The template is kept in step with the swag annotations on the handlers in
// internal/api; TestSwaggerDocCoversRoutes fails when a route is missing.
// Running `swag init -g cmd/server/docs.go -o docs` regenerates it.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/streampick/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns the service name, version and running status",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Service banner",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.ServiceInfo"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "description": "Reports service health, uptime, the canonical moods and catalog status",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Get system health status",
                "responses": {
                    "200": {
                        "description": "Health status retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.HealthStatus"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/health/live": {
            "get": {
                "description": "Returns 200 while the process is running",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Kubernetes liveness probe",
                "responses": {
                    "200": {"description": "Service is alive", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/health/ready": {
            "get": {
                "description": "Returns 503 while Contentstack is enabled and no catalog snapshot has loaded",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Kubernetes readiness probe",
                "responses": {
                    "200": {"description": "Service is ready", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Service is not ready", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/moods": {
            "get": {
                "description": "Lists UI labels, backend tags, every accepted mood input and examples",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "List available moods",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.MoodsInfo"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/recommend": {
            "post": {
                "description": "Ranks the posted catalog for a mood and viewing time",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Rank a caller-supplied catalog",
                "parameters": [
                    {"description": "Mood, time and candidate movies", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RecommendPayload"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/recommend.Response"}}}
                            ]
                        }
                    },
                    "400": {"description": "VALIDATION_ERROR, INVALID_JSON, INVALID_MOOD or NO_CANDIDATES", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "429": {"description": "RATE_LIMIT_EXCEEDED", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "500": {"description": "RECOMMENDATION_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "504": {"description": "TIMEOUT", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/recommendations": {
            "post": {
                "description": "Ranks the Contentstack catalog for a mood and viewing time",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Rank the configured catalog",
                "parameters": [
                    {"description": "Mood and time", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RecommendationsPayload"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.SourcedRecommendations"}}}
                            ]
                        }
                    },
                    "400": {"description": "VALIDATION_ERROR, INVALID_JSON, INVALID_MOOD or NO_CANDIDATES", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "502": {"description": "CATALOG_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "CATALOG_UNAVAILABLE", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "504": {"description": "TIMEOUT", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/movies": {
            "get": {
                "description": "Returns the full catalog from Contentstack",
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "List movies",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.MovieList"}}}
                            ]
                        }
                    },
                    "502": {"description": "CATALOG_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "CATALOG_UNAVAILABLE", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/movies/mood/{mood}": {
            "get": {
                "description": "Returns catalog movies carrying the mood tag, ignoring case",
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "List movies by mood tag",
                "parameters": [
                    {"type": "string", "example": "cozy", "description": "Mood tag", "name": "mood", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.MovieList"}}}
                            ]
                        }
                    },
                    "400": {"description": "VALIDATION_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "502": {"description": "CATALOG_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "CATALOG_UNAVAILABLE", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/subscribers": {
            "post": {
                "description": "Appends a subscriber to the roster entry. Emails compare case-insensitively.\nPreferred moods accept any mood alias and are stored as canonical tags.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Subscribers"],
                "summary": "Subscribe to mood-matched movie updates",
                "parameters": [
                    {"description": "Name, email and preferred moods", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AddSubscriberPayload"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.SubscriberAdded"}}}
                            ]
                        }
                    },
                    "400": {"description": "INVALID_JSON, VALIDATION_ERROR or INVALID_MOOD", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "409": {"description": "ALREADY_SUBSCRIBED", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "502": {"description": "SUBSCRIBERS_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "SUBSCRIBERS_UNAVAILABLE", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/subscribers/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Subscribers"],
                "summary": "Count subscribers",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.SubscriberCount"}}}
                            ]
                        }
                    },
                    "502": {"description": "SUBSCRIBERS_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "SUBSCRIBERS_UNAVAILABLE", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/subscribers/filter-by-moods": {
            "post": {
                "description": "Both sides go through the mood alias table, so \"Edge of Seat\" matches a subscriber who picked \"thrilling\".",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Subscribers"],
                "summary": "Find subscribers for a movie's moods",
                "parameters": [
                    {"description": "Movie mood tags", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.FilterSubscribersPayload"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/models.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.SubscriberMatches"}}}
                            ]
                        }
                    },
                    "400": {"description": "INVALID_JSON or VALIDATION_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "502": {"description": "SUBSCRIBERS_ERROR", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "SUBSCRIBERS_UNAVAILABLE", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.AddSubscriberPayload": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "name": {"type": "string", "maxLength": 200, "example": "Ada Lovelace"},
                "email": {"type": "string", "maxLength": 254, "example": "ada@example.com"},
                "preferred_moods": {"type": "array", "maxItems": 20, "items": {"type": "string"}, "example": ["Cozy & Warm", "thrilling"]}
            }
        },
        "models.FilterSubscribersPayload": {
            "type": "object",
            "required": ["mood_tags"],
            "properties": {
                "mood_tags": {"type": "array", "minItems": 1, "maxItems": 50, "items": {"type": "string"}, "example": ["cozy", "escape"]}
            }
        },
        "models.SubscriberAdded": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Successfully subscribed!"},
                "subscriber": {"$ref": "#/definitions/subscribers.Subscriber"}
            }
        },
        "models.SubscriberCount": {
            "type": "object",
            "properties": {"count": {"type": "integer", "example": 42}}
        },
        "models.SubscriberMatches": {
            "type": "object",
            "properties": {
                "total_matching": {"type": "integer", "example": 1},
                "subscribers": {"type": "array", "items": {"$ref": "#/definitions/subscribers.Match"}}
            }
        },
        "subscribers.Subscriber": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Ada Lovelace"},
                "email": {"type": "string", "example": "ada@example.com"},
                "preferred_moods": {"type": "array", "items": {"type": "string"}, "example": ["cozy", "thrilling"]},
                "subscribed_date": {"type": "string", "example": "2026-10-18"}
            }
        },
        "subscribers.Match": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "preferred_moods": {"type": "array", "items": {"type": "string"}},
                "subscribed_date": {"type": "string"},
                "matching_moods": {"type": "array", "items": {"type": "string"}, "example": ["cozy"]}
            }
        },
        "catalog.Image": {
            "type": "object",
            "properties": {"url": {"type": "string"}}
        },
        "catalog.Record": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "uid": {"type": "string"},
                "title": {"type": "string", "maxLength": 500},
                "year": {"type": "integer"},
                "runtime": {"type": "integer", "minimum": 0},
                "rating": {"type": "number", "maximum": 10, "minimum": 0},
                "genre": {"type": "array", "items": {"type": "string"}},
                "mood_tags": {"type": "array", "items": {"type": "string"}},
                "platforms": {"type": "array", "items": {"type": "string"}},
                "description": {"type": "string"},
                "ai_description": {"type": "string"},
                "image_url": {"type": "string"},
                "image": {"$ref": "#/definitions/catalog.Image"}
            }
        },
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
                "metadata": {"$ref": "#/definitions/models.Metadata"},
                "error": {"$ref": "#/definitions/models.APIError"}
            }
        },
        "models.CatalogHealth": {
            "type": "object",
            "properties": {
                "enabled": {"type": "boolean"},
                "movies": {"type": "integer"},
                "last_refresh": {"type": "string"},
                "breaker_state": {"type": "string"}
            }
        },
        "models.HealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "version": {"type": "string"},
                "uptime_seconds": {"type": "number"},
                "available_moods": {"type": "array", "items": {"type": "string"}},
                "catalog": {"$ref": "#/definitions/models.CatalogHealth"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "request_id": {"type": "string"},
                "query_time_ms": {"type": "integer"},
                "cached": {"type": "boolean"}
            }
        },
        "models.MoodsInfo": {
            "type": "object",
            "properties": {
                "ui_labels": {"type": "array", "items": {"type": "string"}},
                "backend_tags": {"type": "array", "items": {"type": "string"}},
                "all_valid_inputs": {"type": "array", "items": {"type": "string"}},
                "examples": {"type": "array", "items": {"$ref": "#/definitions/mood.Example"}}
            }
        },
        "models.MovieList": {
            "type": "object",
            "properties": {
                "movies": {"type": "array", "items": {"$ref": "#/definitions/recommend.CatalogItem"}},
                "count": {"type": "integer"},
                "mood": {"type": "string"}
            }
        },
        "models.RecommendPayload": {
            "type": "object",
            "required": ["movies"],
            "properties": {
                "mood": {"type": "string", "maxLength": 100, "example": "Edge of Seat"},
                "time_available": {"type": "integer", "maximum": 500, "minimum": 1, "example": 120},
                "top_n": {"type": "integer", "maximum": 10, "minimum": 1, "example": 5},
                "user_id": {"type": "string", "maxLength": 200},
                "movies": {"type": "array", "items": {"$ref": "#/definitions/catalog.Record"}}
            }
        },
        "models.RecommendationsPayload": {
            "type": "object",
            "properties": {
                "mood": {"type": "string", "maxLength": 100, "example": "cozy"},
                "time_available": {"type": "integer", "maximum": 500, "minimum": 1, "example": 90},
                "top_n": {"type": "integer", "maximum": 10, "minimum": 1, "example": 5},
                "user_id": {"type": "string", "maxLength": 200}
            }
        },
        "models.ServiceInfo": {
            "type": "object",
            "properties": {
                "service": {"type": "string"},
                "status": {"type": "string"},
                "version": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "models.SourcedRecommendations": {
            "type": "object",
            "properties": {
                "recommendations": {"type": "array", "items": {"$ref": "#/definitions/recommend.Recommendation"}},
                "total_candidates": {"type": "integer"},
                "filters_applied": {"$ref": "#/definitions/recommend.FiltersApplied"},
                "metadata": {"$ref": "#/definitions/recommend.ResponseMetadata"},
                "source": {"type": "string", "example": "ml"}
            }
        },
        "mood.Example": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "backend": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "recommend.Breakdown": {
            "type": "object",
            "properties": {
                "mood": {"type": "number"},
                "content": {"type": "number"},
                "quality": {"type": "number"},
                "duration": {"type": "number"}
            }
        },
        "recommend.CatalogItem": {
            "type": "object",
            "properties": {
                "uid": {"type": "string"},
                "title": {"type": "string"},
                "year": {"type": "integer"},
                "runtime": {"type": "integer"},
                "rating": {"type": "number"},
                "genre": {"type": "array", "items": {"type": "string"}},
                "mood_tags": {"type": "array", "items": {"type": "string"}},
                "platforms": {"type": "array", "items": {"type": "string"}},
                "description": {"type": "string"},
                "ai_description": {"type": "string"},
                "image_url": {"type": "string"}
            }
        },
        "recommend.FiltersApplied": {
            "type": "object",
            "properties": {
                "mood": {"type": "string"},
                "time_available": {"type": "integer"},
                "time_constraint_relaxed": {"type": "boolean"}
            }
        },
        "recommend.Recommendation": {
            "type": "object",
            "properties": {
                "movie": {"$ref": "#/definitions/recommend.CatalogItem"},
                "similarity_score": {"type": "number"},
                "match_score": {"type": "number"},
                "reason": {"type": "string"},
                "rank": {"type": "integer"},
                "score_breakdown": {"$ref": "#/definitions/recommend.Breakdown"}
            }
        },
        "recommend.Response": {
            "type": "object",
            "properties": {
                "recommendations": {"type": "array", "items": {"$ref": "#/definitions/recommend.Recommendation"}},
                "total_candidates": {"type": "integer"},
                "filters_applied": {"$ref": "#/definitions/recommend.FiltersApplied"},
                "metadata": {"$ref": "#/definitions/recommend.ResponseMetadata"}
            }
        },
        "recommend.ResponseMetadata": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "user_id": {"type": "string"},
                "catalog_size": {"type": "integer"},
                "candidate_count": {"type": "integer"},
                "vocabulary_size": {"type": "integer"},
                "latency_ms": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        }
    },
    "tags": [
        {"description": "Service banner and health checks", "name": "Core"},
        {"description": "Mood catalog and ranking endpoints", "name": "Recommendations"},
        {"description": "Catalog listing backed by Contentstack", "name": "Movies"},
        {"description": "Mailing list roster backed by the Contentstack Management API", "name": "Subscribers"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8001",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "StreamPick API",
	Description:      "Mood and time based movie recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
