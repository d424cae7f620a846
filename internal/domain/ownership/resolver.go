package ownership

import (
	"errors"

	"worldbuilding-app/internal/domain/worlds"

	"gorm.io/gorm"
)

// Owner is the result of create-time resolution: whichever of the requested
// series/book actually belong to the caller. At least one is non-nil.
type Owner struct {
	Series *worlds.Series
	Book   *worlds.Book
}

// AccessSpec names the many2many plumbing of one resource kind so the
// generic queries below can reach books through its join table.
type AccessSpec struct {
	BookJoinTable string // e.g. "battle_books"
	ResourceKey   string // e.g. "battle_id"
}

// ResolveOwnerForCreate checks that the caller owns the series and/or book
// named in the query params. Both ids absent is a validation failure; so is
// neither id resolving to a row owned by userID. kind is the lowercase
// resource name used in the error message ("battle", "character", ...).
func ResolveOwnerForCreate(db *gorm.DB, kind string, userID uint, seriesID, bookID *uint) (Owner, error) {
	if seriesID == nil && bookID == nil {
		return Owner{}, NewOwnerParamError()
	}

	var owner Owner

	if seriesID != nil {
		var s worlds.Series
		err := db.First(&s, "id = ? AND user_id = ?", *seriesID, userID).Error
		if err == nil {
			owner.Series = &s
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Owner{}, err
		}
	}

	if bookID != nil {
		var b worlds.Book
		err := db.First(&b, "id = ? AND user_id = ?", *bookID, userID).Error
		if err == nil {
			owner.Book = &b
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Owner{}, err
		}
	}

	if owner.Series == nil && owner.Book == nil {
		return Owner{}, NewNoOwnerError(kind)
	}
	return owner, nil
}

// FindOwned resolves a single resource for access: the row must exist AND be
// linked to an owner the caller holds on one of the supplied axes. The
// series axis is checked first and wins when both params are given; the book
// axis is only consulted if the series axis yields no match. No match on any
// supplied axis is an authorization failure.
func FindOwned[T any](db *gorm.DB, spec AccessSpec, resourceID, userID uint, seriesID, bookID *uint) (*T, error) {
	if seriesID == nil && bookID == nil {
		return nil, NewOwnerParamError()
	}

	if seriesID != nil {
		out := new(T)
		err := db.First(out, "id = ? AND series_id IN (?)",
			resourceID, ownedSeriesSubquery(db, userID, *seriesID)).Error
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if bookID != nil {
		out := new(T)
		err := db.First(out, "id = ? AND id IN (?)",
			resourceID, bookLinkSubquery(db, spec, userID, *bookID)).Error
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, NewForbiddenError()
}

// FindAllOwned lists every resource of one kind reachable through the
// supplied owner. Same series-first tie-break as FindOwned; the returned
// axis ("series" or "book") names which one was used. An empty result is
// not an error.
func FindAllOwned[T any](db *gorm.DB, spec AccessSpec, userID uint, seriesID, bookID *uint) ([]T, string, error) {
	if seriesID == nil && bookID == nil {
		return nil, "", NewOwnerParamError()
	}

	var out []T
	if seriesID != nil {
		err := db.Find(&out, "series_id IN (?)", ownedSeriesSubquery(db, userID, *seriesID)).Error
		return out, "series", err
	}

	err := db.Find(&out, "id IN (?)", bookLinkSubquery(db, spec, userID, *bookID)).Error
	return out, "book", err
}

func ownedSeriesSubquery(db *gorm.DB, userID, seriesID uint) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&worlds.Series{}).
		Select("id").
		Where("id = ? AND user_id = ?", seriesID, userID)
}

// bookLinkSubquery yields the resource ids linked (via the kind's join
// table) to the given book, provided the caller owns that book.
func bookLinkSubquery(db *gorm.DB, spec AccessSpec, userID, bookID uint) *gorm.DB {
	ownedBook := db.Session(&gorm.Session{NewDB: true}).
		Model(&worlds.Book{}).
		Select("id").
		Where("id = ? AND user_id = ?", bookID, userID)

	return db.Session(&gorm.Session{NewDB: true}).
		Table(spec.BookJoinTable).
		Select(spec.ResourceKey).
		Where("book_id IN (?)", ownedBook)
}
