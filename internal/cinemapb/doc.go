// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cinemapb holds the client's copy of the cinema service wire
// contract: message types for package "cinema", their protobuf encoding,
// a gRPC codec for them, and the service descriptor.
//
// Messages are encoded field by field with protowire so the client does not
// depend on generated code from the backend repository. Field numbers must
// stay in sync with cinema.proto on the server side.
package cinemapb
