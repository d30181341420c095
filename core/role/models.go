package role

import "github.com/su-ri-ya/littlechampions/core"

// Permission categories
const (
	CategoryStudents       = "Students"
	CategoryTeachers       = "Teachers"
	CategoryClasses        = "Classes"
	CategoryAttendance     = "Attendance"
	CategoryFees           = "Fees"
	CategorySettings       = "Settings"
	CategoryAdministration = "Administration"
)

// Permissions
const (
	StudentsView   = "students.view"
	StudentsCreate = "students.create"
	StudentsEdit   = "students.edit"
	StudentsDelete = "students.delete"

	TeachersView   = "teachers.view"
	TeachersCreate = "teachers.create"
	TeachersEdit   = "teachers.edit"
	TeachersDelete = "teachers.delete"

	ClassesView   = "classes.view"
	ClassesCreate = "classes.create"
	ClassesEdit   = "classes.edit"
	ClassesDelete = "classes.delete"

	AttendanceView = "attendance.view"
	AttendanceMark = "attendance.mark"

	FeesView    = "fees.view"
	FeesManage  = "fees.manage"
	FeesCollect = "fees.collect"

	SettingsView   = "settings.view"
	SettingsManage = "settings.manage"

	RolesManage = "roles.manage"
)

type Permission struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Catalog is the fixed list of permissions a Role can be granted.
var Catalog = []Permission{
	{ID: StudentsView, Name: "View Students", Category: CategoryStudents},
	{ID: StudentsCreate, Name: "Create Students", Category: CategoryStudents},
	{ID: StudentsEdit, Name: "Edit Students", Category: CategoryStudents},
	{ID: StudentsDelete, Name: "Delete Students", Category: CategoryStudents},
	{ID: TeachersView, Name: "View Teachers", Category: CategoryTeachers},
	{ID: TeachersCreate, Name: "Create Teachers", Category: CategoryTeachers},
	{ID: TeachersEdit, Name: "Edit Teachers", Category: CategoryTeachers},
	{ID: TeachersDelete, Name: "Delete Teachers", Category: CategoryTeachers},
	{ID: ClassesView, Name: "View Classes", Category: CategoryClasses},
	{ID: ClassesCreate, Name: "Create Classes", Category: CategoryClasses},
	{ID: ClassesEdit, Name: "Edit Classes", Category: CategoryClasses},
	{ID: ClassesDelete, Name: "Delete Classes", Category: CategoryClasses},
	{ID: AttendanceView, Name: "View Attendance", Category: CategoryAttendance},
	{ID: AttendanceMark, Name: "Mark Attendance", Category: CategoryAttendance},
	{ID: FeesView, Name: "View Fees", Category: CategoryFees},
	{ID: FeesManage, Name: "Manage Fees", Category: CategoryFees},
	{ID: FeesCollect, Name: "Collect Fees", Category: CategoryFees},
	{ID: SettingsView, Name: "View Settings", Category: CategorySettings},
	{ID: SettingsManage, Name: "Manage Settings", Category: CategorySettings},
	{ID: RolesManage, Name: "Manage Roles", Category: CategoryAdministration},
}

// IsPermission reports whether id is in the Catalog.
func IsPermission(id string) bool {
	for _, p := range Catalog {
		if p.ID == id {
			return true
		}
	}
	return false
}

// AllPermissions returns the ids of the whole Catalog.
func AllPermissions() []string {
	ids := make([]string, len(Catalog))
	for i, p := range Catalog {
		ids[i] = p.ID
	}
	return ids
}

// PermissionsByCategory groups the Catalog by category, in catalog order.
func PermissionsByCategory() map[string][]Permission {
	grouped := make(map[string][]Permission)
	for _, p := range Catalog {
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	return grouped
}

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// Has reports whether the role was granted the permission.
func (r Role) Has(perm string) bool {
	for _, p := range r.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// Copy returns r with its own permissions slice.
func (r Role) Copy() Role {
	r.Permissions = append(make([]string, 0, len(r.Permissions)), r.Permissions...)
	return r
}

// NewRole contains information needed to create a new Role.
type NewRole struct {
	Name        string   `json:"name" validate:"required,notblank,max=100"`
	Description string   `json:"description" validate:"max=500"`
	Permissions []string `json:"permissions" validate:"omitempty,unique,dive,permission"`
}

func (nr *NewRole) Validate() error {
	nr.Name = core.CleanString(nr.Name)
	nr.Description = core.CleanString(nr.Description)
	for i, p := range nr.Permissions {
		nr.Permissions[i] = core.CleanString(p)
	}
	if nr.Permissions == nil {
		nr.Permissions = []string{}
	}
	return core.Validate.Struct(nr)
}

// UpdateRole defines what information may be provided to modify an existing Role.
// A non-nil Permissions replaces the granted set.
type UpdateRole struct {
	Name        *string  `json:"name" validate:"omitempty,notblank,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Permissions []string `json:"permissions" validate:"omitempty,unique,dive,permission"`
}

func (ur *UpdateRole) Validate() error {
	core.CleanStringPtr(ur.Name)
	core.CleanStringPtr(ur.Description)
	for i, p := range ur.Permissions {
		ur.Permissions[i] = core.CleanString(p)
	}
	return core.Validate.Struct(ur)
}

// Apply merges the set fields over r.
func (ur UpdateRole) Apply(r *Role) {
	if ur.Name != nil {
		r.Name = *ur.Name
	}
	if ur.Description != nil {
		r.Description = *ur.Description
	}
	if ur.Permissions != nil {
		r.Permissions = append(make([]string, 0, len(ur.Permissions)), ur.Permissions...)
	}
}
