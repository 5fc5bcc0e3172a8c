// Package models defines the core domain models for the ATLAX backend.
//
// # Models
//
//   - User: a registered account (email + password hash), used by the auth
//     layer only
//   - Profile: the public-facing side of a user (username, avatar image,
//     currency balance)
//   - Experience: a playable virtual experience in the catalog
//   - Review: a user's rating and comment on an experience
//   - Friend / FriendActivity: the social graph and what friends are playing
//   - NewsArticle: platform news shown on the home page
//   - Transaction: a currency ledger entry (signed amount)
//
// Wearable items and equipped sets live in the avatar package, which owns
// the composition rules; storage and transport treat them as opaque values.
//
// # Design principles
//
//  1. Optional fields are pointers, not sentinel values
//  2. Relationships use ID strings, not embedded pointers
//  3. Closed string enums (ExperienceGenre, FriendStatus) with the valid
//     values next to the type
package models
