// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package docs holds the OpenAPI description of the Reelmatch API, in the
// layout swag produces from the handler annotations. It registers itself
// with swag on import; the router serves it at /swagger/doc.json.
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
            "url": "https://github.com/tomtom215/reelmatch/issues"
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
        "/browse": {
            "get": {
                "description": "Single entry point for the three list views. mode=recommend requires title.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Movies"
                ],
                "summary": "Browse by mode",
                "parameters": [
                    {
                        "enum": [
                            "recommend",
                            "trending",
                            "top-rated"
                        ],
                        "type": "string",
                        "description": "List to show",
                        "name": "mode",
                        "in": "query",
                        "required": true
                    },
                    {
                        "maxLength": 500,
                        "type": "string",
                        "description": "Exact movie title, required when mode=recommend",
                        "name": "title",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "List, possibly empty with a warning",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ListView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid mode or missing title",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "description": "Returns 200 while the process is alive, regardless of dependencies.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "Alive",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "Ready once the similarity index holds at least one movie. Reports the catalog breaker state without failing on it.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    },
                    "503": {
                        "description": "Index empty",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/movies": {
            "get": {
                "description": "Returns every title in the similarity index, in index order.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Movies"
                ],
                "summary": "List known titles",
                "responses": {
                    "200": {
                        "description": "Known titles",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.TitlesView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/movies/top-rated": {
            "get": {
                "description": "First page of TMDB's top rated movies, each with cached metadata.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Movies"
                ],
                "summary": "Top rated movies",
                "responses": {
                    "200": {
                        "description": "List, possibly empty with a warning",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ListView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/movies/trending": {
            "get": {
                "description": "First page of TMDB's weekly trending movies, each with cached metadata.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Movies"
                ],
                "summary": "Trending movies",
                "responses": {
                    "200": {
                        "description": "List, possibly empty with a warning",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ListView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/recommendations": {
            "get": {
                "description": "The recommend.top_k movies most similar to title, best first. An unknown title yields an empty list with a warning.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Movies"
                ],
                "summary": "Recommend similar movies",
                "parameters": [
                    {
                        "maxLength": 500,
                        "type": "string",
                        "description": "Exact movie title",
                        "name": "title",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Recommendations, possibly empty with a warning",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ListView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Missing or overlong title",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "description": "Code is a machine-readable error code",
                    "type": "string"
                },
                "details": {
                    "description": "Details contains additional error details (optional)"
                },
                "message": {
                    "description": "Message is a human-readable error message",
                    "type": "string"
                },
                "request_id": {
                    "description": "RequestID is the request ID for tracing",
                    "type": "string"
                }
            }
        },
        "api.APIMeta": {
            "type": "object",
            "properties": {
                "duration_ms": {
                    "type": "integer"
                },
                "request_id": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data contains the response payload (null on error)"
                },
                "error": {
                    "description": "Error contains error details (null on success)",
                    "allOf": [
                        {
                            "$ref": "#/definitions/api.APIError"
                        }
                    ]
                },
                "meta": {
                    "description": "Meta contains metadata about the response",
                    "allOf": [
                        {
                            "$ref": "#/definitions/api.APIMeta"
                        }
                    ]
                },
                "success": {
                    "description": "Success indicates whether the request was successful",
                    "type": "boolean"
                }
            }
        },
        "api.ListView": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "empty": {
                    "type": "boolean"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/api.MovieView"
                    }
                },
                "mode": {
                    "type": "string"
                },
                "warning": {
                    "type": "string"
                }
            }
        },
        "api.MovieView": {
            "type": "object",
            "properties": {
                "excerpt": {
                    "type": "string"
                },
                "movie_id": {
                    "type": "integer"
                },
                "overview": {
                    "type": "string"
                },
                "poster_url": {
                    "type": "string"
                },
                "rating": {
                    "description": "Vote average, or the string N/A when unknown"
                },
                "score": {
                    "type": "number"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "api.TitlesView": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "titles": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Reelmatch API",
	Description:      "Content-based movie recommendations with live TMDB metadata.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
