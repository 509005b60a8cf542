package access_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/e-dsin/maturity-sub005/internal/access"
)

type recordingSink struct {
	events []access.AuditEvent
}

func (s *recordingSink) Record(_ context.Context, ev access.AuditEvent) {
	s.events = append(s.events, ev)
}

func TestEngineAuthorize(t *testing.T) {
	ctx := context.Background()

	Convey("Given an access decision engine", t, func() {
		engine := access.NewEngine(access.NopSink{})

		Convey("When a manager edits enterprises", func() {
			p := access.Principal{ActorID: "user-7", Role: access.RoleManager, EnterpriseID: "ent-42"}
			d := engine.Authorize(ctx, p, access.ModuleEntreprises, access.ActionEditer)

			Convey("Then the decision allows, filtered to the actor's enterprise", func() {
				So(d.Allowed, ShouldBeTrue)
				So(d.Filter.Global, ShouldBeFalse)
				So(d.Filter.EnterpriseID, ShouldEqual, "ent-42")
				So(d.Filter.ActorID, ShouldBeEmpty)
				So(d.Reason, ShouldEqual, access.ReasonNone)
			})
		})

		Convey("When an intervenant consults forms", func() {
			p := access.Principal{ActorID: "user-3", Role: access.RoleIntervenant, EnterpriseID: "ent-42"}
			d := engine.Authorize(ctx, p, access.ModuleFormulaires, access.ActionConsulter)

			Convey("Then the filter restricts to the actor's own records", func() {
				So(d.Allowed, ShouldBeTrue)
				So(d.Filter.EnterpriseID, ShouldEqual, "ent-42")
				So(d.Filter.ActorID, ShouldEqual, "user-3")
			})
		})

		Convey("When an intervenant tries to delete a form", func() {
			p := access.Principal{ActorID: "user-3", Role: access.RoleIntervenant, EnterpriseID: "ent-42"}
			d := engine.Authorize(ctx, p, access.ModuleFormulaires, access.ActionSupprimer)

			Convey("Then the decision denies on module access", func() {
				So(d.Allowed, ShouldBeFalse)
				So(d.Reason, ShouldEqual, access.ReasonModuleAccess)
				So(d.Filter, ShouldResemble, access.DataFilter{})
			})
		})

		Convey("When a consultant consults analyses", func() {
			p := access.Principal{ActorID: "user-9", Role: access.RoleConsultant, EnterpriseID: "ent-42"}
			d := engine.Authorize(ctx, p, access.ModuleAnalyses, access.ActionConsulter)

			Convey("Then the global scope leaves the filter unrestricted", func() {
				So(d.Allowed, ShouldBeTrue)
				So(d.Filter.Global, ShouldBeTrue)
				So(d.Filter.EnterpriseID, ShouldBeEmpty)
				So(d.Filter.ActorID, ShouldBeEmpty)
			})
		})

		Convey("When the principal carries an unrecognized role", func() {
			p := access.Principal{ActorID: "user-1", Role: access.Role("ROOT"), EnterpriseID: "ent-42"}
			d := engine.Authorize(ctx, p, access.ModuleFormulaires, access.ActionConsulter)

			Convey("Then the engine fails closed", func() {
				So(d.Allowed, ShouldBeFalse)
				So(d.Reason, ShouldEqual, access.ReasonUnknownRole)
			})
		})
	})
}

func TestEngineAuthorizeManage(t *testing.T) {
	ctx := context.Background()

	Convey("Given an access decision engine", t, func() {
		engine := access.NewEngine(access.NopSink{})

		Convey("When a super administrator manages an administrator", func() {
			p := access.Principal{ActorID: "user-1", Role: access.RoleSuperAdministrator}
			d := engine.AuthorizeManage(ctx, p, access.RoleAdministrator, "user-4")

			So(d.Allowed, ShouldBeTrue)
		})

		Convey("When an administrator manages a peer administrator", func() {
			p := access.Principal{ActorID: "user-4", Role: access.RoleAdministrator}
			d := engine.AuthorizeManage(ctx, p, access.RoleAdministrator, "user-5")

			Convey("Then the hierarchy rule denies", func() {
				So(d.Allowed, ShouldBeFalse)
				So(d.Reason, ShouldEqual, access.ReasonHierarchyLevel)
			})
		})

		Convey("When a consultant manages anyone", func() {
			p := access.Principal{ActorID: "user-9", Role: access.RoleConsultant}
			d := engine.AuthorizeManage(ctx, p, access.RoleIntervenant, "user-3")

			Convey("Then the module check denies before the hierarchy rule", func() {
				So(d.Allowed, ShouldBeFalse)
				So(d.Reason, ShouldEqual, access.ReasonModuleAccess)
			})
		})
	})
}

func TestEngineAudit(t *testing.T) {
	ctx := context.Background()

	Convey("Given an engine wired to a recording audit sink", t, func() {
		sink := &recordingSink{}
		engine := access.NewEngine(sink)
		p := access.Principal{ActorID: "user-7", Role: access.RoleManager, EnterpriseID: "ent-42"}

		Convey("When a resource decision is made", func() {
			engine.AuthorizeResource(ctx, p, access.ModuleFormulaires, access.ActionEditer, "form-12")

			Convey("Then the event carries the full decision context", func() {
				So(sink.events, ShouldHaveLength, 1)
				ev := sink.events[0]
				So(ev.ActorID, ShouldEqual, "user-7")
				So(ev.Role, ShouldEqual, "MANAGER")
				So(ev.Module, ShouldEqual, "FORMULAIRES")
				So(ev.Action, ShouldEqual, "editer")
				So(ev.Resource, ShouldEqual, "form-12")
				So(ev.Allowed, ShouldBeTrue)
				So(ev.Timestamp.IsZero(), ShouldBeFalse)
			})
		})

		Convey("When a denial is made", func() {
			bad := access.Principal{ActorID: "user-3", Role: access.RoleIntervenant, EnterpriseID: "ent-42"}
			engine.Authorize(ctx, bad, access.ModuleUtilisateurs, access.ActionEditer)

			Convey("Then the denial and its reason are recorded too", func() {
				So(sink.events, ShouldHaveLength, 1)
				So(sink.events[0].Allowed, ShouldBeFalse)
				So(sink.events[0].Reason, ShouldEqual, string(access.ReasonModuleAccess))
			})
		})
	})
}
