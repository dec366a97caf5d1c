/*
Package shelf implements GameShelf, a tracker for a personal game library.

The project has two main source folders:
`cmd`: The gameshelf command line application.
`internal`: The game model, the library storage and its seed importers.

The library is stored either in a relational database through GORM (SQLite or
PostgreSQL) or in a single JSON file. An empty library is seeded once at startup,
from a CSV catalog export or from a few built-in sample games.
*/
package shelf
